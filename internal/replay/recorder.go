package replay

import (
	"time"

	"github.com/vovakirdan/gravity-switch/internal/config"
)

// Recorder accumulates frames for one session.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for an engine created with the given
// seed, playfield size and tuning.
func NewRecorder(seed int64, width, height float64, tuning config.GravityConfig) *Recorder {
	return &Recorder{
		rec: Recording{
			Version:    Version,
			Seed:       seed,
			Width:      width,
			Height:     height,
			Tuning:     tuning,
			RecordedAt: time.Now().UTC(),
		},
	}
}

// Add appends one frame: taps delivered before a step of dt.
func (r *Recorder) Add(dt float64, taps int) {
	r.rec.Frames = append(r.rec.Frames, Frame{DT: dt, Taps: taps})
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Finish returns a copy of the recording stamped with the outcome.
// The recorder stays usable.
func (r *Recorder) Finish(runID string, score int, distance float64) *Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	rec.RunID = runID
	rec.FinalScore = score
	rec.FinalDistance = distance
	return &rec
}
