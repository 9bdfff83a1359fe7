// Package recorder manages microphone permission, the at-most-one recording
// session, and the list of recorded clips. Device I/O sits behind the
// interfaces below so the state machine is testable without a microphone.
package recorder

import (
	"context"
	"time"
)

// PermissionStatus is the outcome of a microphone permission request.
type PermissionStatus int

const (
	// PermissionGranted allows capture to start.
	PermissionGranted PermissionStatus = iota
	// PermissionDenied means the user declined but may be asked again.
	PermissionDenied
	// PermissionDeniedForever means only system settings can restore access.
	PermissionDeniedForever
)

// PermissionGate requests microphone access.
type PermissionGate interface {
	Request(ctx context.Context) (PermissionStatus, error)
}

// SettingsOpener jumps to the system settings for permission recovery.
type SettingsOpener interface {
	OpenSettings(ctx context.Context) error
}

// AudioSession is one live microphone capture.
type AudioSession interface {
	// Stop finalizes the capture and returns the recorded file URI and duration.
	Stop(ctx context.Context) (fileURI string, duration time.Duration, err error)
}

// AudioCapture starts microphone capture sessions.
type AudioCapture interface {
	Start(ctx context.Context) (AudioSession, error)
}

// Playback is a playable handle over one recorded clip.
type Playback interface {
	Pause() error
	Resume() error
	Stop() error
}

// Player opens playback sessions for recorded clips.
type Player interface {
	Open(ctx context.Context, fileURI string) (Playback, error)
}

// Notifier surfaces recording problems to the user.
type Notifier interface {
	Alert(title, message string)
	// ConfirmOpenSettings asks whether to jump to system settings and reports
	// the user's choice.
	ConfirmOpenSettings(title, message string) bool
}
