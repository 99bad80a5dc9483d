package player

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/educalm/internal/audio"
)

func TestCommandSinkWriteClipTrimsOffset(t *testing.T) {
	s := &CommandSink{TempDir: t.TempDir()}
	buf := &Buffer{Samples: make([]float32, 4*audio.SampleRate), SampleRate: audio.SampleRate}

	file, err := s.writeClip(buf, 1.5)
	require.NoError(t, err)
	defer os.Remove(file)

	assert.Equal(t, s.TempDir, filepath.Dir(file))
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	wav, err := audio.DecodeWAV(data)
	require.NoError(t, err)
	assert.Equal(t, 2.5, audio.Duration(wav.PCM, wav.SampleRate).Seconds())
}

func TestCommandSinkWriteClipPastEnd(t *testing.T) {
	s := &CommandSink{TempDir: t.TempDir()}
	buf := &Buffer{Samples: make([]float32, 10), SampleRate: audio.SampleRate}

	file, err := s.writeClip(buf, 99)
	require.NoError(t, err)
	defer os.Remove(file)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Len(t, data, 44)
}

func TestCommandSinkStopIdle(t *testing.T) {
	s := &CommandSink{}
	assert.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}

func TestPlayerCommandWindowsWaitsForPlayback(t *testing.T) {
	cmd, err := playerCommand("windows", `C:\Temp\it's.wav`, 1.5)
	require.NoError(t, err)

	assert.Equal(t, "powershell", filepath.Base(cmd.Args[0]))
	script := cmd.Args[len(cmd.Args)-1]
	assert.Contains(t, script, "PlaySync()")
	assert.Contains(t, script, `'C:\Temp\it''s.wav'`)
	assert.NotContains(t, cmd.Args, "start")
}

func TestPlayerCommandDarwinTempo(t *testing.T) {
	cmd, err := playerCommand("darwin", "/tmp/clip.wav", 0.75)
	require.NoError(t, err)
	assert.Equal(t, []string{"afplay", "-r", "0.75", "/tmp/clip.wav"}, cmd.Args)
}

func TestPlayerCommandUnsupported(t *testing.T) {
	_, err := playerCommand("plan9", "/tmp/clip.wav", 1)
	assert.ErrorContains(t, err, "unsupported platform: plan9")
}
