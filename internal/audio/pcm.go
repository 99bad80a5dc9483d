package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
)

// Format of every payload the providers return.
const (
	SampleRate    = 24000
	Channels      = 1
	BitsPerSample = 16
)

// ErrInvalidWAV is returned for data that is not a 16-bit PCM WAV file.
var ErrInvalidWAV = errors.New("invalid WAV data")

// DecodePCM16 converts PCM16LE bytes to float samples in [-1, 1). A
// trailing odd byte is ignored.
func DecodePCM16(pcm []byte) []float32 {
	n := len(pcm) / 2
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(pcm[2*i:]))
		out[i] = float32(s) / 32768.0
	}
	return out
}

// EncodePCM16 converts float samples back to PCM16LE, clipping to range.
func EncodePCM16(samples []float32) []byte {
	out := make([]byte, 2*len(samples))
	for i, f := range samples {
		v := math.Round(float64(f) * 32768.0)
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(v)))
	}
	return out
}

// Duration returns the playing time of mono PCM16LE data at sampleRate.
func Duration(pcm []byte, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	frames := len(pcm) / 2
	return time.Duration(frames) * time.Second / time.Duration(sampleRate)
}

// WAV is a decoded 16-bit PCM WAV file.
type WAV struct {
	SampleRate int
	Channels   int
	PCM        []byte
}

// EncodeWAV wraps PCM16LE data in a canonical 44-byte WAV header.
func EncodeWAV(pcm []byte, sampleRate, channels int) []byte {
	var buf bytes.Buffer
	blockAlign := channels * BitsPerSample / 8

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(BitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

// DecodeWAV parses a RIFF/WAVE file with 16-bit integer PCM samples.
// Unknown chunks are skipped.
func DecodeWAV(data []byte) (*WAV, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: missing RIFF/WAVE header", ErrInvalidWAV)
	}

	var w WAV
	haveFmt := false
	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		end := body + size
		if end > len(data) {
			// Streamed files may carry a bogus data size
			if id != "data" {
				return nil, fmt.Errorf("%w: truncated %q chunk", ErrInvalidWAV, id)
			}
			end = len(data)
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%w: short fmt chunk", ErrInvalidWAV)
			}
			format := binary.LittleEndian.Uint16(data[body:])
			w.Channels = int(binary.LittleEndian.Uint16(data[body+2:]))
			w.SampleRate = int(binary.LittleEndian.Uint32(data[body+4:]))
			bits := binary.LittleEndian.Uint16(data[body+14:])
			if format != 1 && format != 0xFFFE {
				return nil, fmt.Errorf("%w: unsupported format %d", ErrInvalidWAV, format)
			}
			if bits != BitsPerSample {
				return nil, fmt.Errorf("%w: unsupported %d-bit samples", ErrInvalidWAV, bits)
			}
			if w.Channels <= 0 || w.SampleRate <= 0 {
				return nil, fmt.Errorf("%w: bad channel count or rate", ErrInvalidWAV)
			}
			haveFmt = true
		case "data":
			if !haveFmt {
				return nil, fmt.Errorf("%w: data before fmt chunk", ErrInvalidWAV)
			}
			w.PCM = data[body:end]
			return &w, nil
		}

		// Chunks are word aligned
		pos = end + size%2
	}
	return nil, fmt.Errorf("%w: no data chunk", ErrInvalidWAV)
}

// Mono returns w's samples mixed down to a single channel.
func (w *WAV) Mono() []byte {
	if w.Channels == 1 {
		return w.PCM
	}
	frame := 2 * w.Channels
	frames := len(w.PCM) / frame
	out := make([]byte, 2*frames)
	for i := 0; i < frames; i++ {
		sum := 0
		for c := 0; c < w.Channels; c++ {
			sum += int(int16(binary.LittleEndian.Uint16(w.PCM[i*frame+2*c:])))
		}
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(sum/w.Channels)))
	}
	return out
}

// Resample converts mono PCM16LE from one rate to another with linear
// interpolation.
func Resample(pcm []byte, from, to int) []byte {
	if from == to || from <= 0 || to <= 0 || len(pcm) < 2 {
		return pcm
	}
	in := DecodePCM16(pcm)
	n := int(int64(len(in)) * int64(to) / int64(from))
	out := make([]float32, n)
	ratio := float64(from) / float64(to)
	for i := range out {
		x := float64(i) * ratio
		j := int(x)
		if j >= len(in)-1 {
			out[i] = in[len(in)-1]
			continue
		}
		frac := float32(x - float64(j))
		out[i] = in[j] + (in[j+1]-in[j])*frac
	}
	return EncodePCM16(out)
}
