package tui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomsv/gomsv/internal/adapters/outbound/tui"
)

func TestReporter_Announce(t *testing.T) {
	buf := new(bytes.Buffer)
	r := tui.New(buf)

	r.Announce("linux/amd64", "go build ./...")

	out := buf.String()
	assert.Contains(t, out, "gomsv")
	assert.Contains(t, out, "go build ./...")
	assert.Contains(t, out, "linux/amd64")
}

func TestReporter_AnnounceWithoutTarget(t *testing.T) {
	buf := new(bytes.Buffer)
	r := tui.New(buf)

	r.Announce("", "go build ./...")

	assert.NotContains(t, buf.String(), "target:")
}

func TestReporter_Progress(t *testing.T) {
	buf := new(bytes.Buffer)
	r := tui.New(buf)

	r.Progress("Checking", "1.49.0")

	assert.Contains(t, buf.String(), "Checking")
	assert.Contains(t, buf.String(), "1.49.0")
}

func TestReporter_Success(t *testing.T) {
	buf := new(bytes.Buffer)
	r := tui.New(buf)

	r.Success("1.49.0")

	assert.Contains(t, buf.String(), "minimum supported version")
	assert.Contains(t, buf.String(), "1.49.0")
}

func TestReporter_Failure(t *testing.T) {
	buf := new(bytes.Buffer)
	r := tui.New(buf)

	r.Failure("go build ./...")

	assert.Contains(t, buf.String(), "no compatible toolchain")
	assert.Contains(t, buf.String(), "go build ./...")
}
