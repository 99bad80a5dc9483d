package player

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"codeberg.org/snonux/educalm/internal/audio"
)

// Sink renders a Buffer. Start always begins a fresh source at offset
// seconds; Stop on an idle sink is a no-op.
type Sink interface {
	Start(buf *Buffer, offset, rate float64) error
	Stop() error
}

// NopSink discards audio. Position tracking still works because it is
// driven by the clock.
type NopSink struct{}

func (NopSink) Start(*Buffer, float64, float64) error { return nil }
func (NopSink) Stop() error                           { return nil }

// CommandSink plays audio through an external player program. The clip
// is trimmed to the start offset and written to a temporary WAV file.
type CommandSink struct {
	// TempDir holds the temporary WAV files. Empty means os.TempDir.
	TempDir string

	mu  sync.Mutex
	cmd *exec.Cmd
}

// Start launches the platform player at offset with the playback rate.
func (s *CommandSink) Start(buf *Buffer, offset, rate float64) error {
	if err := s.Stop(); err != nil {
		return err
	}

	file, err := s.writeClip(buf, offset)
	if err != nil {
		return err
	}
	cmd, err := playerCommand(runtime.GOOS, file, rate)
	if err != nil {
		os.Remove(file)
		return err
	}
	if err := cmd.Start(); err != nil {
		os.Remove(file)
		return fmt.Errorf("failed to start %s: %w", filepath.Base(cmd.Path), err)
	}

	s.mu.Lock()
	s.cmd = cmd
	s.mu.Unlock()

	// Reap the process once playback finishes on its own
	go func() {
		_ = cmd.Wait()
		os.Remove(file)
	}()
	return nil
}

// Stop kills the running player, if any.
func (s *CommandSink) Stop() error {
	s.mu.Lock()
	cmd := s.cmd
	s.cmd = nil
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		if err := cmd.Process.Kill(); err != nil && err != os.ErrProcessDone {
			return fmt.Errorf("failed to stop player: %w", err)
		}
	}
	return nil
}

func (s *CommandSink) writeClip(buf *Buffer, offset float64) (string, error) {
	start := int(offset * float64(buf.SampleRate))
	if start < 0 {
		start = 0
	}
	if start > len(buf.Samples) {
		start = len(buf.Samples)
	}
	data := audio.EncodeWAV(audio.EncodePCM16(buf.Samples[start:]), buf.SampleRate, 1)

	f, err := os.CreateTemp(s.TempDir, "educalm-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary audio file: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temporary audio file: %w", err)
	}
	return f.Name(), nil
}

// playerCommand picks a player for a WAV file on goos. The command must
// block until playback ends, since the file is removed once it exits.
func playerCommand(goos, file string, rate float64) (*exec.Cmd, error) {
	tempo := strconv.FormatFloat(rate, 'f', -1, 64)

	switch goos {
	case "darwin": // macOS
		return exec.Command("afplay", "-r", tempo, file), nil
	case "linux":
		// Try multiple commands in order of preference
		// ffplay and SoX honor the playback rate
		if _, err := exec.LookPath("ffplay"); err == nil {
			return exec.Command("ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", "-af", "atempo="+tempo, file), nil
		} else if _, err := exec.LookPath("play"); err == nil {
			// SoX play command
			return exec.Command("play", "-q", file, "tempo", tempo), nil
		} else if _, err := exec.LookPath("paplay"); err == nil {
			return exec.Command("paplay", file), nil
		} else if _, err := exec.LookPath("aplay"); err == nil {
			return exec.Command("aplay", "-q", file), nil
		}
		return nil, fmt.Errorf("no audio player found. Install ffplay, sox, paplay, or aplay")
	case "windows":
		// PlaySync holds the process open for the length of the clip
		script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", strings.ReplaceAll(file, "'", "''"))
		return exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
