package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"blueace_booking_client/internal/recorder"
	"blueace_booking_client/platform/config"
)

// FFPlayPlayer plays recorded clips through ffplay.
type FFPlayPlayer struct {
	command string
}

// NewFFPlayPlayer creates a player using the configured ffplay binary.
func NewFFPlayPlayer(cfg config.AudioConfig) *FFPlayPlayer {
	command := cfg.GetFFPlayCommand()
	if command == "" {
		command = "ffplay"
	}
	return &FFPlayPlayer{command: command}
}

// Open starts playback of the clip at the given file URI.
func (p *FFPlayPlayer) Open(ctx context.Context, fileURI string) (recorder.Playback, error) {
	path := strings.TrimPrefix(fileURI, "file://")

	cmd := exec.CommandContext(ctx, p.command,
		"-nodisp",
		"-autoexit",
		"-loglevel", "quiet",
		path,
	)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffplay: %w", err)
	}

	pb := &ffplayPlayback{process: cmd.Process}

	go func() {
		_ = cmd.Wait()
		pb.markDone()
	}()

	return pb, nil
}

// ffplayPlayback pauses and resumes by suspending the ffplay process.
type ffplayPlayback struct {
	mu      sync.Mutex
	process *os.Process
	done    bool
}

func (p *ffplayPlayback) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return nil
	}
	return p.process.Signal(syscall.SIGSTOP)
}

func (p *ffplayPlayback) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return nil
	}
	return p.process.Signal(syscall.SIGCONT)
}

func (p *ffplayPlayback) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done {
		return nil
	}
	return p.process.Kill()
}

func (p *ffplayPlayback) markDone() {
	p.mu.Lock()
	p.done = true
	p.mu.Unlock()
}
