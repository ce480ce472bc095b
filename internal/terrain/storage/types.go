package storage

import (
	"github.com/OCharnyshevich/heightfield/internal/terrain/config"
	"github.com/OCharnyshevich/heightfield/internal/terrain/world"
	"github.com/OCharnyshevich/heightfield/pkg/heightfield"
)

// TerrainData is the serializable representation of a terrain.
type TerrainData struct {
	ID      string             `json:"id"`
	Config  config.Config      `json:"config"`
	Heights []float64          `json:"heights"` // row-major, z outer
	Bands   []heightfield.Band `json:"bands"`
	Edits   []EditData         `json:"edits,omitempty"`
}

// EditData is a single brush stroke for JSON serialization.
type EditData struct {
	CenterX  float64 `json:"center_x"`
	CenterZ  float64 `json:"center_z"`
	Radius   float64 `json:"radius"`
	Delta    float64 `json:"delta"`
	Affected int     `json:"affected"`
}

// TerrainDataFromWorld extracts serializable data from a runtime World.
func TerrainDataFromWorld(w *world.World) *TerrainData {
	g := w.Snapshot()
	td := &TerrainData{
		ID:      w.ID(),
		Config:  w.Config(),
		Heights: g.Heights(),
		Bands:   g.Bands(),
	}
	w.ForEachEdit(func(e world.Edit) {
		td.Edits = append(td.Edits, EditData{
			CenterX:  e.CenterX,
			CenterZ:  e.CenterZ,
			Radius:   e.Radius,
			Delta:    e.Delta,
			Affected: e.Affected,
		})
	})
	return td
}
