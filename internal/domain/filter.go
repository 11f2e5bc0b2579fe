package domain

// Include reports whether v falls within the optional inclusive bounds. A nil
// bound leaves that side of the range open.
func Include(v Version, min, max *Version) bool {
	if min != nil && v.Compare(*min) < 0 {
		return false
	}
	if max != nil && v.Compare(*max) > 0 {
		return false
	}
	return true
}

// FilterReleases keeps the releases whose versions fall within the bounds,
// preserving the input order.
func FilterReleases(releases []Release, min, max *Version) []Release {
	var kept []Release
	for _, r := range releases {
		if Include(r.Version, min, max) {
			kept = append(kept, r)
		}
	}
	return kept
}
