package world

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/heightfield/internal/terrain/config"
	"github.com/OCharnyshevich/heightfield/pkg/heightfield"
	"github.com/OCharnyshevich/heightfield/pkg/heightfield/noise"
)

// spawnClearance is how far above the highest possible terrain the viewer
// spawns.
const spawnClearance = 10

// Edit is one applied brush stroke.
type Edit struct {
	CenterX, CenterZ float64
	Radius, Delta    float64
	Affected         int
}

// World owns a synthesized terrain and serializes brush strokes against
// concurrent readers.
type World struct {
	mu    sync.RWMutex
	id    string
	cfg   config.Config
	grid  *heightfield.Grid
	edits []Edit
	log   *slog.Logger
}

// Generate synthesizes a new terrain from cfg.
func Generate(cfg *config.Config, log *slog.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := noise.New(cfg.Noise, cfg.Seed)
	if err != nil {
		return nil, err
	}

	synth := heightfield.NewSynthesizer(src, heightfield.WithWorkers(cfg.Workers))
	grid, err := synth.Synthesize(cfg.Width, cfg.Length, cfg.MaxHeight, cfg.Params())
	if err != nil {
		return nil, fmt.Errorf("synthesize terrain: %w", err)
	}

	w := Restore(uuid.NewString(), cfg, grid, nil, log)
	log.Info("terrain synthesized",
		"id", w.id,
		"width", cfg.Width,
		"length", cfg.Length,
		"noise", cfg.Noise,
		"seed", cfg.Seed,
		"samples", grid.Len(),
	)
	return w, nil
}

// Restore wraps an existing grid, e.g. one loaded from storage. edits is the
// log of strokes already baked into grid.
func Restore(id string, cfg *config.Config, grid *heightfield.Grid, edits []Edit, log *slog.Logger) *World {
	return &World{
		id:    id,
		cfg:   *cfg,
		grid:  grid,
		edits: append([]Edit(nil), edits...),
		log:   log,
	}
}

func (w *World) ID() string { return w.id }

// Config returns a copy of the configuration the terrain was built with.
func (w *World) Config() config.Config { return w.cfg }

// Height returns the terrain height at (x, z).
func (w *World) Height(x, z int) (float64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Height(x, z)
}

// Band returns the terrain band at (x, z).
func (w *World) Band(x, z int) (heightfield.Band, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Band(x, z)
}

// Slope returns the forward slope at (x, z) in degrees.
func (w *World) Slope(x, z int) (float64, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return heightfield.Slope(w.grid, x, z)
}

// Raise applies the configured brush upward at (cx, cz).
func (w *World) Raise(cx, cz float64) (Edit, error) {
	return w.Apply(cx, cz, w.cfg.BrushRadius, w.cfg.BrushHeight)
}

// Lower applies the configured brush downward at (cx, cz).
func (w *World) Lower(cx, cz float64) (Edit, error) {
	return w.Apply(cx, cz, w.cfg.BrushRadius, -w.cfg.BrushHeight)
}

// Apply runs a radial edit and records it in the edit log.
func (w *World) Apply(cx, cz, radius, delta float64) (Edit, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := heightfield.EditRadial(w.grid, cx, cz, radius, delta)
	if err != nil {
		return Edit{}, fmt.Errorf("edit terrain %s: %w", w.id, err)
	}

	e := Edit{CenterX: cx, CenterZ: cz, Radius: radius, Delta: delta, Affected: n}
	w.edits = append(w.edits, e)
	w.log.Debug("terrain edited",
		"id", w.id,
		"center", fmt.Sprintf("%g,%g", cx, cz),
		"radius", radius,
		"delta", delta,
		"affected", n,
	)
	return e, nil
}

// ForEachEdit calls fn for every applied stroke, oldest first, under a read lock.
func (w *World) ForEachEdit(fn func(e Edit)) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, e := range w.edits {
		fn(e)
	}
}

// Snapshot returns a copy of the current grid.
func (w *World) Snapshot() *heightfield.Grid {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Clone()
}

// BandCounts returns how many samples fall into each band.
func (w *World) BandCounts() map[heightfield.Band]int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.BandCounts()
}

// PlacementSites returns the samples flat enough for props under the
// configured max slope. Water is excluded.
func (w *World) PlacementSites() []heightfield.Site {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return heightfield.PlacementSites(w.grid, w.cfg.MaxSlope, heightfield.BandWater)
}

// SpawnPoint returns the viewer start position: centred over the terrain,
// above its maximum height.
func (w *World) SpawnPoint() heightfield.Vertex {
	return heightfield.Vertex{
		X: float64(w.cfg.Width / 2),
		Y: w.cfg.MaxHeight + spawnClearance,
		Z: float64(w.cfg.Length / 2),
	}
}
