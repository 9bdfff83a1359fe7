package recorder

import (
	"context"
	"sync"
	"time"

	"blueace_booking_client/platform/logger"

	"github.com/google/uuid"
)

// Clip is one finished recording with playback metadata.
type Clip struct {
	ID       string
	FileURI  string
	Duration time.Duration
}

// Recorder owns the recording state machine: Idle -> Recording -> Idle.
// At most one capture session is active at a time.
type Recorder struct {
	capture  AudioCapture
	player   Player
	gate     PermissionGate
	settings SettingsOpener
	notifier Notifier
	log      *logger.Logger

	mu       sync.Mutex
	current  AudioSession
	clips    []Clip
	playback map[int]Playback
	playing  map[int]bool
}

// New creates a recorder over the given capture and playback capabilities.
func New(capture AudioCapture, player Player, gate PermissionGate, settings SettingsOpener, notifier Notifier, log *logger.Logger) *Recorder {
	return &Recorder{
		capture:  capture,
		player:   player,
		gate:     gate,
		settings: settings,
		notifier: notifier,
		log:      log,
		playback: make(map[int]Playback),
		playing:  make(map[int]bool),
	}
}

// Start requests microphone permission and begins capture. Calling it while a
// session is already active is a no-op. Failures are alerted, never returned
// to the caller, and leave existing clips intact.
func (r *Recorder) Start(ctx context.Context) {
	r.mu.Lock()
	if r.current != nil {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	status, err := r.gate.Request(ctx)
	if err != nil {
		r.log.Error("permission request failed", "error", err)
		r.notifier.Alert("Error", "An error occurred while trying to start recording.")
		return
	}

	switch status {
	case PermissionDenied:
		r.notifier.Alert("Permission Required", "We need your permission to record audio.")
		return
	case PermissionDeniedForever:
		if r.notifier.ConfirmOpenSettings(
			"Microphone Permission Required",
			"To record your voice, please enable microphone access in your settings.",
		) {
			if err := r.settings.OpenSettings(ctx); err != nil {
				r.log.Error("open settings failed", "error", err)
			}
		}
		return
	}

	session, err := r.capture.Start(ctx)
	if err != nil {
		r.log.Error("capture start failed", "error", err)
		r.notifier.Alert("Error", "An error occurred while trying to start recording.")
		return
	}

	r.mu.Lock()
	if r.current != nil {
		// A concurrent Start won the race; discard this capture.
		r.mu.Unlock()
		_, _, _ = session.Stop(ctx)
		return
	}
	r.current = session
	clipCount := len(r.clips)
	r.mu.Unlock()

	r.log.RecorderEvent("recording_started", clipCount)
}

// Stop finalizes the active capture into a clip. No-op when idle.
func (r *Recorder) Stop(ctx context.Context) {
	r.mu.Lock()
	session := r.current
	r.current = nil
	r.mu.Unlock()

	if session == nil {
		return
	}

	fileURI, duration, err := session.Stop(ctx)
	if err != nil {
		r.log.Error("capture stop failed", "error", err)
		r.notifier.Alert("Error", "Failed to finish the recording.")
		return
	}

	r.mu.Lock()
	r.clips = append(r.clips, Clip{
		ID:       uuid.NewString(),
		FileURI:  fileURI,
		Duration: duration,
	})
	clipCount := len(r.clips)
	r.mu.Unlock()

	r.log.RecorderEvent("recording_stopped", clipCount)
}

// Active reports whether a capture session is in progress.
func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current != nil
}

// Clips returns the recorded clips in order.
func (r *Recorder) Clips() []Clip {
	r.mu.Lock()
	defer r.mu.Unlock()
	clips := make([]Clip, len(r.clips))
	copy(clips, r.clips)
	return clips
}

// TogglePlayback plays or pauses the clip at the given index. Playback state
// is tracked independently per clip.
func (r *Recorder) TogglePlayback(ctx context.Context, index int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.clips) {
		return
	}

	if r.playing[index] {
		if pb := r.playback[index]; pb != nil {
			if err := pb.Pause(); err != nil {
				r.log.Error("pause failed", "clip", index, "error", err)
			}
		}
		r.playing[index] = false
		return
	}

	if pb := r.playback[index]; pb != nil {
		if err := pb.Resume(); err != nil {
			r.log.Error("resume failed", "clip", index, "error", err)
			return
		}
		r.playing[index] = true
		return
	}

	pb, err := r.player.Open(ctx, r.clips[index].FileURI)
	if err != nil {
		r.log.Error("playback open failed", "clip", index, "error", err)
		r.notifier.Alert("Error", "Could not play the recording.")
		return
	}
	r.playback[index] = pb
	r.playing[index] = true
}

// ClearAll stops any playback and empties the clip list.
func (r *Recorder) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, pb := range r.playback {
		if pb != nil {
			_ = pb.Stop()
		}
	}

	r.clips = nil
	r.playback = make(map[int]Playback)
	r.playing = make(map[int]bool)

	r.log.RecorderEvent("clips_cleared", 0)
}
