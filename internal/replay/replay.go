// Package replay records the inputs of a play session and re-simulates
// them. A recording holds everything the engine needs to reproduce a
// session bit for bit: seed, playfield size, tuning and the per-frame
// deltas and taps. Recordings are stored as MessagePack.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/gravity-switch/internal/config"
)

// Version is the recording format written by this package.
const Version = 1

var (
	// ErrUnsupportedVersion is returned when decoding a recording written
	// by an incompatible format version.
	ErrUnsupportedVersion = errors.New("replay: unsupported recording version")

	// ErrMismatch is returned by Verify when re-simulation disagrees with
	// the recorded outcome.
	ErrMismatch = errors.New("replay: outcome mismatch")
)

// Frame is one step of the frame driver.
type Frame struct {
	DT   float64 `msgpack:"dt"`
	Taps int     `msgpack:"taps,omitempty"`
}

// Recording is a complete, self-contained session.
type Recording struct {
	Version    int                  `msgpack:"version"`
	RunID      string               `msgpack:"run_id"`
	Seed       int64                `msgpack:"seed"`
	Width      float64              `msgpack:"width"`
	Height     float64              `msgpack:"height"`
	Tuning     config.GravityConfig `msgpack:"tuning"`
	Frames     []Frame              `msgpack:"frames"`
	RecordedAt time.Time            `msgpack:"recorded_at"`

	FinalScore    int     `msgpack:"final_score"`
	FinalDistance float64 `msgpack:"final_distance"`
}

// Duration returns the simulated time covered by the recording.
func (r *Recording) Duration() time.Duration {
	var frames float64
	for _, f := range r.Frames {
		if f.DT > 0 {
			frames += f.DT
		}
	}
	return time.Duration(frames * float64(time.Second) / 60)
}

// Encode writes rec to w.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: cannot encode recording: %w", err)
	}
	return nil
}

// Decode reads a recording from r.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: cannot decode recording: %w", err)
	}
	if rec.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, rec.Version)
	}
	return &rec, nil
}

// WriteFile encodes rec into the file at path, replacing it.
func WriteFile(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: cannot create %s: %w", path, err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes the recording stored at path.
func ReadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
