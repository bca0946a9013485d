package deltarange

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Config holds parameters of the sampling experiment
type Config struct {
	// Lower and upper bounds of the uniform distribution for every box coordinate
	Low float64
	Up  float64
	// Fixed reference rectangle candidates are matched against
	Reference Box
	// Candidate is accepted when its IoU is strictly greater than threshold. Default 0.8
	Threshold float64
	// Max number of draws per trial. Zero means retry until accepted
	MaxAttempts int
	// Abort run after this many consecutive exhausted trials. Zero means never abort
	MaxSkipped int
	// Emit progress line every N trials. Zero disables progress
	ProgressEvery int
	// Use LegacyReferenceArea instead of ReferenceArea for the union term
	LegacyReferenceArea bool
}

// DefaultConfig returns configuration of the classic experiment:
// coordinates in [-10, 20), reference (0, 0, 10, 10), IoU > 0.8, unbounded retries.
func DefaultConfig() Config {
	return Config{
		Low:           -10.0,
		Up:            20.0,
		Reference:     NewBox(0, 0, 10, 10),
		Threshold:     0.8,
		MaxAttempts:   0,
		MaxSkipped:    0,
		ProgressEvery: 50000,
	}
}

// Validate checks configuration for values the sampler can't work with
func (cfg Config) Validate() error {
	if !finite(cfg.Low, cfg.Up) || !(cfg.Low < cfg.Up) {
		return errors.Wrapf(ErrInvalidBounds, "low=%v up=%v", cfg.Low, cfg.Up)
	}
	ref := cfg.Reference
	if !finite(ref.X1, ref.Y1, ref.X2, ref.Y2) || ref.Degenerate() {
		return errors.Wrapf(ErrInvalidReference, "reference=%s", cfg.Reference)
	}
	if !(cfg.Threshold >= 0 && cfg.Threshold < 1) {
		return errors.Wrapf(ErrInvalidThreshold, "threshold=%v", cfg.Threshold)
	}
	if cfg.ProgressEvery < 0 {
		return errors.Wrapf(ErrInvalidProgress, "progress=%d", cfg.ProgressEvery)
	}
	if cfg.MaxAttempts < 0 || cfg.MaxSkipped < 0 {
		return errors.Wrapf(ErrInvalidAttempts, "max attempts=%d max skipped=%d", cfg.MaxAttempts, cfg.MaxSkipped)
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// BoxSampler draws random boxes, filters them by IoU against the reference rectangle
// and accumulates ranges of IoU and regression targets of accepted boxes.
// It owns its random source and is not safe for concurrent use.
type BoxSampler struct {
	id      uuid.UUID
	cfg     Config
	coord   distuv.Uniform
	refArea AreaFunc

	IoURange Range
	DXRange  Range
	DYRange  Range
	DWRange  Range
	DHRange  Range

	attempts int64
	accepted int
	skipped  int
}

// NewBoxSampler creates sampler with given configuration and random source
func NewBoxSampler(cfg Config, src rand.Source) (*BoxSampler, error) {
	if src == nil {
		return nil, errors.New("random source is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Can't create box sampler")
	}
	refArea := ReferenceArea
	if cfg.LegacyReferenceArea {
		refArea = LegacyReferenceArea
	}
	return &BoxSampler{
		id:  uuid.New(),
		cfg: cfg,
		coord: distuv.Uniform{
			Min: cfg.Low,
			Max: cfg.Up,
			Src: src,
		},
		refArea: refArea,
	}, nil
}

// GetID returns identifier of the run
func (s *BoxSampler) GetID() uuid.UUID {
	return s.id
}

// GetConfig returns sampler's configuration
func (s *BoxSampler) GetConfig() Config {
	return s.cfg
}

// SampleBox draws every coordinate independently from uniform [low, up).
// Result is not normalized.
func (s *BoxSampler) SampleBox() Box {
	return Box{
		X1: s.coord.Rand(),
		Y1: s.coord.Rand(),
		X2: s.coord.Rand(),
		Y2: s.coord.Rand(),
	}
}

// ComputeIoU normalizes box in place and calculates its IoU against the reference.
// Every defined IoU is folded into IoURange, whether the box gets accepted or not.
func (s *BoxSampler) ComputeIoU(box *Box) (float64, bool) {
	box.Normalize()
	iou, ok := iouWithArea(*box, s.cfg.Reference, s.refArea)
	if ok {
		s.IoURange.Update(iou)
	}
	return iou, ok
}

// Trial samples boxes until one passes the IoU threshold, then folds its offsets into
// the ranges. It returns ErrAcceptanceExhausted when MaxAttempts draws were not enough.
func (s *BoxSampler) Trial() (Offsets, error) {
	for attempt := 0; s.cfg.MaxAttempts == 0 || attempt < s.cfg.MaxAttempts; attempt++ {
		box := s.SampleBox()
		s.attempts++
		iou, ok := s.ComputeIoU(&box)
		if !ok || !(iou > s.cfg.Threshold) {
			continue
		}
		offsets, err := BoxToOffsets(box, s.cfg.Reference)
		if err != nil {
			return Offsets{}, errors.Wrap(err, "Can't compute offsets for accepted box")
		}
		s.DXRange.Update(offsets.DX)
		s.DYRange.Update(offsets.DY)
		s.DWRange.Update(offsets.DW)
		s.DHRange.Update(offsets.DH)
		s.accepted++
		return offsets, nil
	}
	s.skipped++
	return Offsets{}, errors.Wrapf(ErrAcceptanceExhausted, "gave up after %d attempts", s.cfg.MaxAttempts)
}

// Run executes given number of trials. Progress lines "steps: <i>" are written to
// progress every ProgressEvery trials (progress may be nil).
// Exhausted trials are skipped; run is aborted when MaxSkipped of them happen in a row.
// Report is returned even if run has been aborted.
func (s *BoxSampler) Run(trials int, progress io.Writer) (*Report, error) {
	if trials < 0 {
		return s.Report(), errors.Errorf("number of trials must not be negative, got %d", trials)
	}
	consecutive := 0
	for i := 0; i < trials; i++ {
		if progress != nil && s.cfg.ProgressEvery > 0 && i%s.cfg.ProgressEvery == 0 {
			fmt.Fprintf(progress, "steps: %d\n", i)
		}
		_, err := s.Trial()
		if err == nil {
			consecutive = 0
			continue
		}
		if !errors.Is(err, ErrAcceptanceExhausted) {
			return s.Report(), errors.Wrapf(err, "Trial %d failed", i)
		}
		consecutive++
		if s.cfg.MaxSkipped > 0 && consecutive >= s.cfg.MaxSkipped {
			return s.Report(), errors.Wrapf(err, "Aborting on trial %d after %d consecutive skipped trials", i, consecutive)
		}
	}
	return s.Report(), nil
}

// Report returns snapshot of the accumulated statistics
func (s *BoxSampler) Report() *Report {
	return &Report{
		RunID:    s.id,
		Trials:   s.accepted + s.skipped,
		Accepted: s.accepted,
		Skipped:  s.skipped,
		Attempts: s.attempts,
		IoU:      s.IoURange,
		DX:       s.DXRange,
		DY:       s.DYRange,
		DW:       s.DWRange,
		DH:       s.DHRange,
	}
}
