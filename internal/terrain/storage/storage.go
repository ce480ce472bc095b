package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/heightfield/internal/terrain/config"
	"github.com/OCharnyshevich/heightfield/internal/terrain/world"
	"github.com/OCharnyshevich/heightfield/pkg/heightfield"
)

// Storage handles file-based persistence for config and terrains.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating subdirectories as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	dirs := []string{
		dir,
		filepath.Join(dir, "terrains"),
		filepath.Join(dir, "presets"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return &Storage{dir: dir, log: log}, nil
}

// PresetDir returns the directory presets are fetched into.
func (s *Storage) PresetDir() string {
	return filepath.Join(s.dir, "presets")
}

// LoadConfig reads config.json into cfg. If the file does not exist, cfg is unchanged.
func (s *Storage) LoadConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	s.log.Info("loaded config from file", "path", path)
	return nil
}

// SaveConfig writes cfg to config.json atomically.
func (s *Storage) SaveConfig(cfg *config.Config) error {
	path := filepath.Join(s.dir, "config.json")
	return s.atomicWriteJSON(path, cfg)
}

// SaveTerrain writes the terrain snapshot to terrains/<id>.json atomically.
func (s *Storage) SaveTerrain(w *world.World) error {
	td := TerrainDataFromWorld(w)
	path := s.terrainPath(td.ID, ".json")
	if err := s.atomicWriteJSON(path, td); err != nil {
		return fmt.Errorf("save terrain %s: %w", td.ID, err)
	}
	s.log.Info("saved terrain", "id", td.ID, "path", path, "edits", len(td.Edits))
	return nil
}

// LoadTerrain reads terrains/<id>.json and rebuilds the World, edit log included.
func (s *Storage) LoadTerrain(id string) (*world.World, error) {
	path := s.terrainPath(id, ".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read terrain %s: %w", id, err)
	}

	var td TerrainData
	if err := json.Unmarshal(data, &td); err != nil {
		return nil, fmt.Errorf("parse terrain %s: %w", id, err)
	}

	cfg := td.Config
	grid, err := heightfield.Restore(cfg.Width, cfg.Length, cfg.MaxHeight, td.Heights, td.Bands)
	if err != nil {
		return nil, fmt.Errorf("restore terrain %s: %w", id, err)
	}

	edits := make([]world.Edit, 0, len(td.Edits))
	for _, e := range td.Edits {
		edits = append(edits, world.Edit{
			CenterX:  e.CenterX,
			CenterZ:  e.CenterZ,
			Radius:   e.Radius,
			Delta:    e.Delta,
			Affected: e.Affected,
		})
	}
	return world.Restore(td.ID, &cfg, grid, edits, s.log), nil
}

// ExportPNG renders the terrain's bands to terrains/<id>.png, one pixel per
// sample with z growing downwards, and returns the path.
func (s *Storage) ExportPNG(w *world.World) (string, error) {
	g := w.Snapshot()
	img := image.NewRGBA(image.Rect(0, 0, g.Width()+1, g.Length()+1))
	bands := g.Bands()
	for z := 0; z <= g.Length(); z++ {
		for x := 0; x <= g.Width(); x++ {
			img.SetRGBA(x, z, bands[g.Index(x, z)].Color())
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	path := s.terrainPath(w.ID(), ".png")
	if err := atomicWrite(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Storage) terrainPath(id, ext string) string {
	return filepath.Join(s.dir, "terrains", id+ext)
}

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func (s *Storage) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	return atomicWrite(path, data)
}

func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
