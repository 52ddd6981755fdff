package engine

import (
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/piwi3910/cutplanner/internal/model"
)

// Progress carries scalar run metrics to the presentation layer.
// Intermediate panel data is never exposed; only the terminal result
// carries layouts.
type Progress struct {
	Percent    float64       // 0-99 while running, 100 at completion
	Iterations int           // Perturbation iterations completed
	Remaining  time.Duration // Remaining wall-clock budget
	Stability  float64       // Time since last improvement / stability threshold
}

// Optimizer is the anytime local-search driver around the guillotine
// packer. It repeatedly reorders each material group's pieces and keeps
// the best packing found within a wall-clock budget.
type Optimizer struct {
	// Logger receives per-iteration failures and the run summary.
	// Defaults to a no-op logger.
	Logger zerolog.Logger

	opts model.Options
	rng  *rand.Rand
}

// NewOptimizer creates an optimizer with the given options and random
// source. The random source drives only the shuffle branch of the
// perturbation; passing a fixed-seed source makes test runs repeatable.
// A nil rng falls back to a time-seeded source.
func NewOptimizer(opts model.Options, rng *rand.Rand) *Optimizer {
	def := model.DefaultOptions()
	if opts.MaxDuration <= 0 {
		opts.MaxDuration = def.MaxDuration
	}
	if opts.StabilityThreshold <= 0 {
		opts.StabilityThreshold = def.StabilityThreshold
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = def.ProgressInterval
	}
	if opts.ShuffleProbability <= 0 {
		opts.ShuffleProbability = def.ShuffleProbability
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Optimizer{
		Logger: zerolog.Nop(),
		opts:   opts,
		rng:    rng,
	}
}

// Run is a handle to one in-flight optimization. The loop runs on a
// single goroutine; Progress and Done are its only outputs and Stop its
// only input.
type Run struct {
	progress chan Progress
	done     chan model.OptimizationResult
	stop     chan struct{}
	stopOnce sync.Once
}

// Progress returns the channel of scalar progress events. It is closed
// after the final 100% event.
func (r *Run) Progress() <-chan Progress {
	return r.progress
}

// Done returns the channel delivering the single terminal result.
func (r *Run) Done() <-chan model.OptimizationResult {
	return r.done
}

// Stop requests the run to finish with its current best result. It is
// idempotent and safe after completion; the loop observes it within one
// perturb-pack-compare cycle.
func (r *Run) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
}

// groupState tracks one material group's pieces and best-so-far panels.
// Each state is touched only by the single optimizer goroutine.
type groupState struct {
	material model.Material
	pieces   []model.Piece
	best     []*model.PanelSolution
}

// Start launches the optimization and returns immediately. Quantities
// are expanded into unit pieces before grouping.
func (o *Optimizer) Start(pieces []model.Piece) *Run {
	run := &Run{
		progress: make(chan Progress, 1),
		done:     make(chan model.OptimizationResult, 1),
		stop:     make(chan struct{}),
	}
	go o.loop(model.ExpandPieces(pieces), run)
	return run
}

// loop is the single logical thread of the optimizer. It cold-starts
// every group, then perturbs and repacks until a stop condition fires.
func (o *Optimizer) loop(pieces []model.Piece, run *Run) {
	start := time.Now()

	states, oversize := o.coldStart(pieces)

	lastImprove := time.Now()
	lastEmit := start
	iteration := 0
	reason := "empty"

	if len(states) > 0 {
	search:
		for {
			select {
			case <-run.stop:
				reason = "stop-requested"
				break search
			default:
			}

			if time.Since(start) >= o.opts.MaxDuration {
				reason = "timeout"
				break search
			}
			if time.Since(lastImprove) >= o.opts.StabilityThreshold {
				reason = "stable"
				break search
			}

			if time.Since(lastEmit) >= o.opts.ProgressInterval {
				lastEmit = time.Now()
				o.emit(run, o.progressAt(start, lastImprove, iteration))
				runtime.Gosched()
			}

			iteration++
			for i := range states {
				if o.iterate(&states[i], iteration) {
					lastImprove = time.Now()
				}
			}
		}
	}

	var flattened []*model.PanelSolution
	for i := range states {
		flattened = append(flattened, states[i].best...)
	}
	result := model.BuildResult(flattened, oversize)

	o.Logger.Info().
		Str("reason", reason).
		Int("iterations", iteration).
		Int("panels", result.Stats.TotalPanels).
		Float64("utilization", result.Stats.GlobalUtilization).
		Dur("elapsed", time.Since(start)).
		Msg("optimization finished")

	o.emit(run, Progress{Percent: 100, Iterations: iteration})
	close(run.progress)
	run.done <- result
	close(run.done)
}

// coldStart partitions pieces by material, filters out pieces that
// cannot fit an empty panel in any allowed orientation, and seeds each
// group's best result from an area-descending pack.
func (o *Optimizer) coldStart(pieces []model.Piece) ([]groupState, []model.Piece) {
	var oversize []model.Piece
	var fitting []model.Piece
	for _, p := range pieces {
		if o.fitsPanel(p) {
			fitting = append(fitting, p)
		} else {
			oversize = append(oversize, p)
			o.Logger.Warn().
				Str("label", p.Label).
				Float64("length", p.Length).
				Float64("width", p.Width).
				Msg("piece exceeds panel size, excluded from packing")
		}
	}

	groups := GroupByMaterial(fitting)
	states := make([]groupState, 0, len(groups))
	for _, g := range groups {
		ordered := make([]model.Piece, len(g.Pieces))
		copy(ordered, g.Pieces)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Area() > ordered[j].Area()
		})

		states = append(states, groupState{
			material: g.Material,
			pieces:   ordered,
			best:     o.packGroup(ordered, g.Material),
		})
	}
	return states, oversize
}

// fitsPanel reports whether a piece fits an empty panel in at least one
// allowed orientation.
func (o *Optimizer) fitsPanel(p model.Piece) bool {
	if p.Length <= o.opts.PanelWidth && p.Width <= o.opts.PanelHeight {
		return true
	}
	if o.opts.AllowRotation && p.Width <= o.opts.PanelWidth && p.Length <= o.opts.PanelHeight {
		return true
	}
	return false
}

// iterate runs one perturb-pack-compare cycle for a group. A panic in
// the cycle is logged and the iteration contributes no candidate; the
// previous best is preserved.
func (o *Optimizer) iterate(st *groupState, iteration int) (improved bool) {
	defer func() {
		if r := recover(); r != nil {
			o.Logger.Error().
				Interface("panic", r).
				Str("material", st.material.Key()).
				Int("iteration", iteration).
				Msg("iteration failed, keeping previous best")
			improved = false
		}
	}()

	candidate := o.packGroup(o.perturb(st.pieces, iteration), st.material)
	if BetterSolution(candidate, st.best) {
		st.best = candidate
		return true
	}
	return false
}

// packGroup packs one material group and tags the resulting panels.
func (o *Optimizer) packGroup(ordered []model.Piece, material model.Material) []*model.PanelSolution {
	panels, _ := Pack(ordered, o.opts.PanelWidth, o.opts.PanelHeight, o.opts.AllowRotation, o.opts.MinOffcutArea)
	for _, p := range panels {
		p.Material = material
	}
	return panels
}

// perturb produces a fresh ordering of the group's pieces: usually a
// uniform random shuffle, otherwise one of four deterministic sort
// criteria cycled by iteration count.
func (o *Optimizer) perturb(pieces []model.Piece, iteration int) []model.Piece {
	ordered := make([]model.Piece, len(pieces))
	copy(ordered, pieces)

	if o.rng.Float64() < o.opts.ShuffleProbability {
		o.rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
		return ordered
	}

	switch iteration % 4 {
	case 0:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Length > ordered[j].Length
		})
	case 1:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Width > ordered[j].Width
		})
	case 2:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].MaxDim() > ordered[j].MaxDim()
		})
	default:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Area() > ordered[j].Area()
		})
	}
	return ordered
}

// progressAt builds a progress snapshot. Percent is capped below 100
// until the run truly finishes.
func (o *Optimizer) progressAt(start, lastImprove time.Time, iteration int) Progress {
	elapsed := time.Since(start)
	percent := elapsed.Seconds() / o.opts.MaxDuration.Seconds() * 100.0
	if percent > 99 {
		percent = 99
	}
	remaining := o.opts.MaxDuration - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return Progress{
		Percent:    percent,
		Iterations: iteration,
		Remaining:  remaining,
		Stability:  time.Since(lastImprove).Seconds() / o.opts.StabilityThreshold.Seconds(),
	}
}

// emit delivers a progress event with latest-wins semantics: a stale
// undelivered event is replaced rather than blocking the loop. The loop
// goroutine is the only sender, so the drain-then-send pair is safe.
func (o *Optimizer) emit(run *Run, p Progress) {
	select {
	case <-run.progress:
	default:
	}
	run.progress <- p
}
