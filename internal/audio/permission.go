package audio

import (
	"context"
	"os/exec"

	"blueace_booking_client/internal/recorder"
	"blueace_booking_client/platform/config"
)

// DesktopGate approximates the mobile permission flow on the desktop: access
// is considered granted when the capture binary is installed, and permanently
// denied when it is missing (only a settings/install step can fix that).
type DesktopGate struct {
	command string
}

// NewDesktopGate creates a gate checking for the configured ffmpeg binary.
func NewDesktopGate(cfg config.AudioConfig) *DesktopGate {
	command := cfg.GetFFMPEGCommand()
	if command == "" {
		command = "ffmpeg"
	}
	return &DesktopGate{command: command}
}

// Request reports whether microphone capture is available.
func (g *DesktopGate) Request(ctx context.Context) (recorder.PermissionStatus, error) {
	if _, err := exec.LookPath(g.command); err != nil {
		return recorder.PermissionDeniedForever, nil
	}
	return recorder.PermissionGranted, nil
}

// XDGSettingsOpener opens the system sound settings.
type XDGSettingsOpener struct{}

// OpenSettings launches the desktop settings handler.
func (XDGSettingsOpener) OpenSettings(ctx context.Context) error {
	return exec.CommandContext(ctx, "xdg-open", "settings://sound").Start()
}
