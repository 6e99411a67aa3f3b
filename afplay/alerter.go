// Package afplay plays macOS system sounds through the afplay command.
// It is the platform-conditional Alerter; callers check Available before
// offering the option.
package afplay

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/pagewatch"
)

// DefaultSound is the system sound played when none is specified.
const DefaultSound = "pop"

// soundsDir is where macOS ships its system sounds.
const soundsDir = "/System/Library/Sounds/"

// Names lists the accepted sound names, matching `ls /System/Library/Sounds`.
var Names = []string{
	"basso",
	"blow",
	"bottle",
	"frog",
	"funk",
	"glass",
	"hero",
	"morse",
	"ping",
	"pop",
	"purr",
	"sosumi",
	"submarine",
	"tink",
}

// Available reports whether system sound playback is supported on this
// platform.
func Available() bool {
	return runtime.GOOS == "darwin"
}

// Ensure Alerter implements pagewatch.Alerter at compile time.
var _ pagewatch.Alerter = (*Alerter)(nil)

// Alerter plays a named macOS system sound on each alert.
type Alerter struct {
	path string
}

// NewAlerter creates an Alerter for the named sound. Unknown names and
// unsupported platforms are configuration errors, reported as EINVALID
// before any network activity happens.
func NewAlerter(name string) (*Alerter, error) {
	if !Available() {
		return nil, pagewatch.Errorf(pagewatch.EINVALID, "system sounds are only supported on macOS")
	}
	if !validName(name) {
		return nil, pagewatch.Errorf(pagewatch.EINVALID, "unknown sound %q (available: %s)", name, strings.Join(Names, ", "))
	}
	return &Alerter{path: soundsDir + title(name) + ".aiff"}, nil
}

// Alert plays the sound, blocking until playback finishes. Best-effort:
// callers treat a failure as a skipped alert.
func (a *Alerter) Alert(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "afplay", a.path)
	return cmd.Run()
}

func validName(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// title capitalizes the sound name the way the sound files are named
// (pop -> Pop).
func title(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
