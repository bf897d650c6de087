package poem

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"sync"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/farahidi/pkg/farahidi"
	"github.com/cognicore/farahidi/pkg/farahidi/internalerr"
	"github.com/cognicore/farahidi/pkg/farahidi/prosody"
)

// Line is a hemistich and its scansion.
type Line struct {
	Hemistich
	Result farahidi.ScansionResult
}

// Report is the analysis of a whole poem.
type Report struct {
	ID                string
	Lines             []Line // in input order
	UnifiedMeter      string // empty when no hemistich matched a meter
	SubForm           prosody.SubForm
	OverallConfidence float64 // mean confidence over all hemistichs
}

// Analyzer scans the hemistichs of a poem with a bounded number of workers.
type Analyzer struct {
	engine  *farahidi.Engine
	workers int

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewAnalyzer creates an analyzer. workers < 1 means one worker.
func NewAnalyzer(engine *farahidi.Engine, workers int) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{
		engine:  engine,
		workers: workers,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Analyze splits text into hemistichs and analyses them.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Report, error) {
	return a.AnalyzeHemistichs(ctx, Split(text))
}

// AnalyzeHemistichs scans already split hemistichs. It stops at the first
// cancellation of ctx and returns its error.
func (a *Analyzer) AnalyzeHemistichs(ctx context.Context, hs []Hemistich) (Report, error) {
	if len(hs) == 0 {
		return Report{}, fmt.Errorf("%w: no hemistichs to analyse", internalerr.ErrInvalidInput)
	}

	lines := make([]Line, len(hs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, h := range hs {
		if err := gctx.Err(); err != nil {
			break
		}
		i, h := i, h // per-iteration copies (go directive is 1.21)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lines[i] = Line{Hemistich: h, Result: a.engine.Analyze(h.Text)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	report := Report{
		ID:    a.newID(),
		Lines: lines,
	}
	report.UnifiedMeter, report.SubForm = unify(lines)
	report.OverallConfidence = meanConfidence(lines)
	return report, nil
}

func (a *Analyzer) newID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ulid.MustNew(ulid.Now(), a.entropy).String()
}

type vote struct {
	meter   string
	subForm prosody.SubForm
}

// unify picks the (meter, sub-form) pair with the highest summed
// confidence. Ties go to the pair seen first.
func unify(lines []Line) (string, prosody.SubForm) {
	weights := make(map[vote]float64)
	var order []vote

	for _, l := range lines {
		m := l.Result.Meter
		if m == nil {
			continue
		}
		v := vote{meter: m.Meter, subForm: m.SubForm}
		if _, seen := weights[v]; !seen {
			order = append(order, v)
		}
		weights[v] += l.Result.Confidence
	}

	if len(order) == 0 {
		return "", ""
	}
	best := order[0]
	for _, v := range order[1:] {
		if weights[v] > weights[best] {
			best = v
		}
	}
	return best.meter, best.subForm
}

func meanConfidence(lines []Line) float64 {
	if len(lines) == 0 {
		return 0
	}
	sum := 0.0
	for _, l := range lines {
		sum += l.Result.Confidence
	}
	return math.Round(sum/float64(len(lines))*100) / 100
}
