package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"codeberg.org/snonux/educalm/internal/i18n"
)

// ESpeakConfig holds configuration for espeak-ng audio generation
type ESpeakConfig struct {
	Binary    string // Executable name or path (default: "espeak-ng")
	Speed     int    // Speech speed in words per minute (default: 150)
	Pitch     int    // Pitch adjustment, 0 to 99 (default: 50)
	Amplitude int    // Volume/amplitude, 0 to 200 (default: 100)
	WordGap   int    // Gap between words in 10ms units (default: 0)
}

// DefaultConfig returns the default espeak-ng configuration
func DefaultConfig() *ESpeakConfig {
	return &ESpeakConfig{
		Binary:    "espeak-ng",
		Speed:     150,
		Pitch:     50,
		Amplitude: 100,
		WordGap:   0,
	}
}

// ESpeak provides an interface to the espeak-ng text-to-speech engine
type ESpeak struct {
	config *ESpeakConfig
}

// New creates a new ESpeak instance with the given configuration
func New(config *ESpeakConfig) (*ESpeak, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Binary == "" {
		config.Binary = "espeak-ng"
	}

	// Check if espeak-ng is installed
	if err := checkESpeakInstalled(config.Binary); err != nil {
		return nil, err
	}

	return &ESpeak{config: config}, nil
}

// Synthesize runs espeak-ng and returns the WAV file it writes to stdout.
func (e *ESpeak) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, e.config.Binary, e.args(text, voice)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, stderr.String())
	}
	return stdout.Bytes(), nil
}

func (e *ESpeak) args(text, voice string) []string {
	args := []string{
		"--stdout",
		"-v", voice,                                 // Voice selection
		"-s", fmt.Sprintf("%d", e.config.Speed),     // Speed
		"-p", fmt.Sprintf("%d", e.config.Pitch),     // Pitch
		"-a", fmt.Sprintf("%d", e.config.Amplitude), // Amplitude/volume
	}

	// Add word gap if specified
	if e.config.WordGap > 0 {
		args = append(args, "-g", fmt.Sprintf("%d", e.config.WordGap))
	}

	return append(args, text)
}

// SetSpeed updates the speech speed
func (e *ESpeak) SetSpeed(speed int) {
	if speed < 80 {
		speed = 80
	} else if speed > 450 {
		speed = 450
	}
	e.config.Speed = speed
}

// SetPitch updates the pitch (0-99, 50 is default)
func (e *ESpeak) SetPitch(pitch int) {
	if pitch < 0 {
		pitch = 0
	} else if pitch > 99 {
		pitch = 99
	}
	e.config.Pitch = pitch
}

// SetAmplitude updates the volume/amplitude (0-200, 100 is default)
func (e *ESpeak) SetAmplitude(amplitude int) {
	if amplitude < 0 {
		amplitude = 0
	} else if amplitude > 200 {
		amplitude = 200
	}
	e.config.Amplitude = amplitude
}

// checkESpeakInstalled verifies that espeak-ng is available on the system
func checkESpeakInstalled(binary string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

// VoiceFor returns the espeak-ng voice variant for a language and gender,
// e.g. "ar+m1" or "en+f1".
func VoiceFor(lang i18n.Language, g Gender) string {
	variant := "+f1"
	if g == Male {
		variant = "+m1"
	}
	if lang == "" {
		lang = i18n.English
	}
	return string(lang) + variant
}
