// Package catalog indexes synthesized terrains and their brush history in a
// sqlite database.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/OCharnyshevich/heightfield/internal/terrain/world"
	"github.com/OCharnyshevich/heightfield/pkg/heightfield"
)

// ErrNotFound is returned when a terrain id is not in the catalog.
var ErrNotFound = errors.New("terrain not found")

const schema = `
CREATE TABLE IF NOT EXISTS terrains(
	id TEXT NOT NULL PRIMARY KEY,
	created_at DATETIME NOT NULL,
	width INTEGER NOT NULL,
	length INTEGER NOT NULL,
	max_height REAL NOT NULL,
	scale REAL NOT NULL,
	octaves INTEGER NOT NULL,
	persistence REAL NOT NULL,
	lacunarity REAL NOT NULL,
	noise TEXT NOT NULL,
	seed INTEGER NOT NULL,
	water INTEGER NOT NULL,
	grass INTEGER NOT NULL,
	dirt INTEGER NOT NULL,
	rock INTEGER NOT NULL,
	snow INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS edits(
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	terrain_id TEXT NOT NULL REFERENCES terrains(id),
	center_x REAL NOT NULL,
	center_z REAL NOT NULL,
	radius REAL NOT NULL,
	delta REAL NOT NULL,
	affected INTEGER NOT NULL);`

// Terrain is one catalog row.
type Terrain struct {
	ID          string    `db:"id"`
	CreatedAt   time.Time `db:"created_at"`
	Width       int       `db:"width"`
	Length      int       `db:"length"`
	MaxHeight   float64   `db:"max_height"`
	Scale       float64   `db:"scale"`
	Octaves     int       `db:"octaves"`
	Persistence float64   `db:"persistence"`
	Lacunarity  float64   `db:"lacunarity"`
	Noise       string    `db:"noise"`
	Seed        int64     `db:"seed"`
	Water       int       `db:"water"`
	Grass       int       `db:"grass"`
	Dirt        int       `db:"dirt"`
	Rock        int       `db:"rock"`
	Snow        int       `db:"snow"`
}

// Edit is one recorded brush stroke.
type Edit struct {
	ID        int64   `db:"id"`
	TerrainID string  `db:"terrain_id"`
	CenterX   float64 `db:"center_x"`
	CenterZ   float64 `db:"center_z"`
	Radius    float64 `db:"radius"`
	Delta     float64 `db:"delta"`
	Affected  int     `db:"affected"`
}

// Catalog is a sqlite-backed terrain index.
type Catalog struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the catalog database at path.
func Open(ctx context.Context, path string) (*Catalog, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create catalog schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// RecordTerrain stores the terrain's parameters and band counts along with
// its edit log. Recording an id again replaces the earlier entry.
func (c *Catalog) RecordTerrain(ctx context.Context, w *world.World) error {
	cfg := w.Config()
	counts := w.BandCounts()
	row := Terrain{
		ID:          w.ID(),
		CreatedAt:   time.Now().UTC(),
		Width:       cfg.Width,
		Length:      cfg.Length,
		MaxHeight:   cfg.MaxHeight,
		Scale:       cfg.Scale,
		Octaves:     cfg.Octaves,
		Persistence: cfg.Persistence,
		Lacunarity:  cfg.Lacunarity,
		Noise:       cfg.Noise,
		Seed:        cfg.Seed,
		Water:       counts[heightfield.BandWater],
		Grass:       counts[heightfield.BandGrass],
		Dirt:        counts[heightfield.BandDirt],
		Rock:        counts[heightfield.BandRock],
		Snow:        counts[heightfield.BandSnow],
	}

	tx, err := c.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM edits WHERE terrain_id = ?", row.ID); err != nil {
		return fmt.Errorf("clear edits for %s: %w", row.ID, err)
	}
	if _, err := tx.NamedExecContext(ctx, `INSERT OR REPLACE INTO terrains(
		id, created_at, width, length, max_height, scale, octaves, persistence, lacunarity,
		noise, seed, water, grass, dirt, rock, snow)
		VALUES(:id, :created_at, :width, :length, :max_height, :scale, :octaves, :persistence, :lacunarity,
		:noise, :seed, :water, :grass, :dirt, :rock, :snow)`, &row); err != nil {
		return fmt.Errorf("insert terrain %s: %w", row.ID, err)
	}

	var insertErr error
	w.ForEachEdit(func(e world.Edit) {
		if insertErr != nil {
			return
		}
		insertErr = insertEdit(ctx, tx, row.ID, e)
	})
	if insertErr != nil {
		return insertErr
	}
	return tx.Commit()
}

// RecordEdit appends a single brush stroke to a terrain already in the catalog.
func (c *Catalog) RecordEdit(ctx context.Context, terrainID string, e world.Edit) error {
	if _, err := c.Terrain(ctx, terrainID); err != nil {
		return err
	}
	return insertEdit(ctx, c.db, terrainID, e)
}

func insertEdit(ctx context.Context, ext sqlx.ExtContext, terrainID string, e world.Edit) error {
	_, err := sqlx.NamedExecContext(ctx, ext, `INSERT INTO edits(terrain_id, center_x, center_z, radius, delta, affected)
		VALUES(:terrain_id, :center_x, :center_z, :radius, :delta, :affected)`, Edit{
		TerrainID: terrainID,
		CenterX:   e.CenterX,
		CenterZ:   e.CenterZ,
		Radius:    e.Radius,
		Delta:     e.Delta,
		Affected:  e.Affected,
	})
	if err != nil {
		return fmt.Errorf("insert edit for %s: %w", terrainID, err)
	}
	return nil
}

// Terrain returns the catalog entry for id.
func (c *Catalog) Terrain(ctx context.Context, id string) (Terrain, error) {
	var t Terrain
	err := c.db.GetContext(ctx, &t, "SELECT * FROM terrains WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Terrain{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Terrain{}, fmt.Errorf("query terrain %s: %w", id, err)
	}
	return t, nil
}

// Terrains lists every catalogued terrain, newest first.
func (c *Catalog) Terrains(ctx context.Context) ([]Terrain, error) {
	var ts []Terrain
	if err := c.db.SelectContext(ctx, &ts, "SELECT * FROM terrains ORDER BY created_at DESC, id"); err != nil {
		return nil, fmt.Errorf("list terrains: %w", err)
	}
	return ts, nil
}

// Edits returns the brush strokes of a terrain in the order they were applied.
func (c *Catalog) Edits(ctx context.Context, terrainID string) ([]Edit, error) {
	var es []Edit
	if err := c.db.SelectContext(ctx, &es, "SELECT * FROM edits WHERE terrain_id = ? ORDER BY id", terrainID); err != nil {
		return nil, fmt.Errorf("list edits for %s: %w", terrainID, err)
	}
	return es, nil
}
