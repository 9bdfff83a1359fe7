// Package audio provides ffmpeg-backed implementations of the recorder ports.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"blueace_booking_client/internal/recorder"
	"blueace_booking_client/platform/config"

	"github.com/google/uuid"
)

// FFMPEGCapture records microphone audio to WAV files using ffmpeg.
type FFMPEGCapture struct {
	command     string
	inputFormat string
	inputDevice string
	dir         string
}

// NewFFMPEGCapture creates a capture writing into the configured recording dir.
func NewFFMPEGCapture(cfg config.AudioConfig) *FFMPEGCapture {
	command := cfg.GetFFMPEGCommand()
	if command == "" {
		command = "ffmpeg"
	}

	inputFormat := cfg.GetAudioInputFormat()
	if inputFormat == "" {
		inputFormat = "pulse"
	}

	inputDevice := cfg.GetAudioInputDevice()
	if inputDevice == "" {
		inputDevice = "default"
	}

	return &FFMPEGCapture{
		command:     command,
		inputFormat: inputFormat,
		inputDevice: inputDevice,
		dir:         cfg.GetRecordingDir(),
	}
}

// Start launches ffmpeg and confirms it survives startup before handing the
// session back.
func (c *FFMPEGCapture) Start(ctx context.Context) (recorder.AudioSession, error) {
	if err := os.MkdirAll(c.dir, 0o700); err != nil {
		return nil, fmt.Errorf("create recording dir: %w", err)
	}

	outputPath := filepath.Join(c.dir, uuid.NewString()+".wav")

	args := []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "warning",
		"-f", c.inputFormat,
		"-i", c.inputDevice,
		"-ac", "1",
		"-ar", "16000",
		"-y",
		outputPath,
	}

	cmd := exec.CommandContext(ctx, c.command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- cmd.Wait()
		close(waitErr)
	}()

	select {
	case err := <-waitErr:
		if err != nil {
			return nil, fmt.Errorf("ffmpeg exited before capture started: %w: %s", err, trimmed(stderr.String()))
		}
		return nil, errors.New("ffmpeg exited before capture started")
	case <-time.After(250 * time.Millisecond):
	}

	return &ffmpegSession{
		outputPath: outputPath,
		startedAt:  time.Now(),
		stderr:     &stderr,
		process:    cmd.Process,
		waitErr:    waitErr,
	}, nil
}

type ffmpegSession struct {
	outputPath string
	startedAt  time.Time
	stderr     *bytes.Buffer

	process *os.Process
	waitErr <-chan error

	stopOnce sync.Once
	stopErr  error
}

// Stop interrupts ffmpeg so it finalizes the WAV header and returns the file URI.
func (s *ffmpegSession) Stop(ctx context.Context) (string, time.Duration, error) {
	s.stopOnce.Do(func() {
		if s.process != nil {
			_ = s.process.Signal(os.Interrupt)
		}

		select {
		case err, ok := <-s.waitErr:
			if ok {
				s.stopErr = normalizeStopErr(err)
			}
		case <-time.After(1200 * time.Millisecond):
			if s.process != nil {
				_ = s.process.Kill()
			}
			err, ok := <-s.waitErr
			if ok {
				s.stopErr = normalizeStopErr(err)
			}
		}

		if s.stopErr != nil && s.stderr != nil && s.stderr.Len() > 0 {
			s.stopErr = fmt.Errorf("%w: %s", s.stopErr, trimmed(s.stderr.String()))
		}
	})

	if s.stopErr != nil {
		return "", 0, s.stopErr
	}

	if _, err := os.Stat(s.outputPath); err != nil {
		return "", 0, fmt.Errorf("recording file missing: %w", err)
	}

	return "file://" + s.outputPath, time.Since(s.startedAt), nil
}

func normalizeStopErr(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ffmpeg exits non-zero when interrupted mid-capture; the file is
		// still finalized.
		return nil
	}
	return err
}

func trimmed(input string) string {
	return string(bytes.TrimSpace([]byte(input)))
}
