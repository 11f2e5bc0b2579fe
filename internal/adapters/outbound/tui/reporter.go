// Package tui renders scan progress to the terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gomsv/gomsv/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(success)
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(danger)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
)

// Reporter implements domain.ProgressReporter by writing styled lines to out.
type Reporter struct {
	out io.Writer
}

// New creates a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Announce(target, command string) {
	title := headerStyle.Render("gomsv")
	detail := dimStyle.Render(fmt.Sprintf("check command: %s", command))
	if target != "" {
		detail += "\n" + dimStyle.Render(fmt.Sprintf("target: %s", target))
	}
	fmt.Fprintln(r.out, boxStyle.Render(title+"\n"+detail))
}

func (r *Reporter) Progress(phase string, version domain.Version) {
	fmt.Fprintf(r.out, "%s %s\n", dimStyle.Render(phase), version)
}

func (r *Reporter) Success(version domain.Version) {
	label := okStyle.Render("minimum supported version")
	fmt.Fprintln(r.out, boxStyle.Render(label+"\n"+version.String()))
}

func (r *Reporter) Failure(command string) {
	fmt.Fprintf(r.out, "%s %s\n",
		failStyle.Render("no compatible toolchain found for"),
		strings.TrimSpace(command))
}

// Silent is a no-op reporter for quiet and JSON output modes.
type Silent struct{}

func (Silent) Announce(string, string)         {}
func (Silent) Progress(string, domain.Version) {}
func (Silent) Success(domain.Version)          {}
func (Silent) Failure(string)                  {}
