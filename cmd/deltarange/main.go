package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/LdDl/delta-range/deltarange"
	"github.com/pkg/errors"
)

const (
	// DefaultTrials is the number of accepted boxes the experiment collects
	DefaultTrials = 4000000
	// Second PCG word, first one is the seed
	pcgStream = 0x9e3779b97f4a7c15
)

func main() {
	defaults := deltarange.DefaultConfig()
	var (
		low         = flag.Float64("low", defaults.Low, "Lower bound of sampled coordinates")
		up          = flag.Float64("up", defaults.Up, "Upper bound of sampled coordinates (exclusive)")
		ref         = flag.String("ref", formatBox(defaults.Reference), "Reference rectangle as x1,y1,x2,y2")
		trials      = flag.Int("trials", DefaultTrials, "Number of trials")
		progress    = flag.Int("progress", defaults.ProgressEvery, "Print progress every N trials (0 disables)")
		threshold   = flag.Float64("threshold", defaults.Threshold, "Accept boxes with IoU strictly greater than this value")
		maxAttempts = flag.Int("max-attempts", defaults.MaxAttempts, "Max draws per trial (0 retries until accepted)")
		maxSkipped  = flag.Int("max-skipped", defaults.MaxSkipped, "Abort after N consecutive exhausted trials (0 never aborts)")
		seed        = flag.Uint64("seed", 0, "Random seed (0 picks one from current time)")
		legacyArea  = flag.Bool("legacy-area", false, "Compute reference area with the legacy (x2-y1)*(y2-y1) formula")
	)
	flag.Parse()

	reference, err := parseBox(*ref)
	if err != nil {
		log.Fatalf("Bad -ref value: %v", err)
	}

	cfg := deltarange.Config{
		Low:                 *low,
		Up:                  *up,
		Reference:           reference,
		Threshold:           *threshold,
		MaxAttempts:         *maxAttempts,
		MaxSkipped:          *maxSkipped,
		ProgressEvery:       *progress,
		LegacyReferenceArea: *legacyArea,
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	sampler, err := deltarange.NewBoxSampler(cfg, rand.NewPCG(*seed, pcgStream))
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("Run %s: seed=%d trials=%d bounds=[%v, %v) reference=%s threshold=%v max-attempts=%d legacy-area=%t\n",
		sampler.GetID(), *seed, *trials, cfg.Low, cfg.Up, cfg.Reference, cfg.Threshold, cfg.MaxAttempts, cfg.LegacyReferenceArea)

	start := time.Now()
	report, runErr := sampler.Run(*trials, os.Stdout)
	if _, err := report.WriteTo(os.Stdout); err != nil {
		log.Fatalf("Can't write report: %v", err)
	}
	log.Printf("Run %s finished in %v: accepted=%d skipped=%d attempts=%d acceptance rate=%.3g\n",
		report.RunID, time.Since(start), report.Accepted, report.Skipped, report.Attempts, report.AcceptanceRate())
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// parseBox parses "x1,y1,x2,y2" into a box
func parseBox(s string) (deltarange.Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return deltarange.Box{}, errors.Errorf("expected 4 comma separated numbers, got %q", s)
	}
	var coords [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return deltarange.Box{}, errors.Wrapf(err, "coordinate %d", i)
		}
		coords[i] = v
	}
	return deltarange.NewBox(coords[0], coords[1], coords[2], coords[3]), nil
}

func formatBox(box deltarange.Box) string {
	return fmt.Sprintf("%v,%v,%v,%v", box.X1, box.Y1, box.X2, box.Y2)
}
