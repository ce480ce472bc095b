package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/OCharnyshevich/heightfield/internal/terrain/catalog"
	"github.com/OCharnyshevich/heightfield/internal/terrain/config"
	"github.com/OCharnyshevich/heightfield/internal/terrain/preset"
	"github.com/OCharnyshevich/heightfield/internal/terrain/storage"
	"github.com/OCharnyshevich/heightfield/internal/terrain/world"
	"github.com/OCharnyshevich/heightfield/pkg/heightfield"
	"github.com/OCharnyshevich/heightfield/pkg/heightfield/noise"
)

// stroke is a brush edit given on the command line as cx,cz,radius,delta.
type stroke struct {
	cx, cz, radius, delta float64
}

func parseStroke(s string) (stroke, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return stroke{}, fmt.Errorf("edit %q: want cx,cz,radius,delta", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return stroke{}, fmt.Errorf("edit %q: %w", s, err)
		}
		v[i] = f
	}
	return stroke{cx: v[0], cz: v[1], radius: v[2], delta: v[3]}, nil
}

func main() {
	cfg := config.DefaultConfig()

	var (
		dataDir     = flag.String("data", "./data", "data directory for config, terrains and presets")
		presetSrc   = flag.String("preset", "", "go-getter source of a terrain preset (file, URL, git::...)")
		catalogPath = flag.String("catalog", "", "sqlite catalog path (default <data>/catalog.sqlite, \"-\" to disable)")
		saveConfig  = flag.Bool("save-config", false, "write the effective config back to <data>/config.json")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	var strokes []stroke

	flag.IntVar(&cfg.Width, "width", cfg.Width, "terrain width in quads")
	flag.IntVar(&cfg.Length, "length", cfg.Length, "terrain length in quads")
	flag.Float64Var(&cfg.MaxHeight, "max-height", cfg.MaxHeight, "maximum terrain height")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "noise sampling scale")
	flag.IntVar(&cfg.Octaves, "octaves", cfg.Octaves, "number of noise octaves")
	flag.Float64Var(&cfg.Persistence, "persistence", cfg.Persistence, "amplitude decay per octave, in (0,1]")
	flag.Float64Var(&cfg.Lacunarity, "lacunarity", cfg.Lacunarity, "frequency growth per octave")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed")
	flag.StringVar(&cfg.Noise, "noise", cfg.Noise, "noise source: "+strings.Join(noise.Names(), ", "))
	flag.Float64Var(&cfg.MaxSlope, "max-slope", cfg.MaxSlope, "steepest slope in degrees that still takes props")
	flag.Float64Var(&cfg.BrushRadius, "brush-radius", cfg.BrushRadius, "brush radius")
	flag.Float64Var(&cfg.BrushHeight, "brush-height", cfg.BrushHeight, "brush strength")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "synthesis goroutines")
	flag.Func("edit", "brush stroke cx,cz,radius,delta (repeatable)", func(s string) error {
		st, err := parseStroke(s)
		if err != nil {
			return err
		}
		strokes = append(strokes, st)
		return nil
	})
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, log, cfg, explicit, *dataDir, *presetSrc, *catalogPath, *saveConfig, strokes); err != nil {
		log.Error("terrain", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cfg *config.Config, explicit map[string]bool,
	dataDir, presetSrc, catalogPath string, saveConfig bool, strokes []stroke) error {
	store, err := storage.New(dataDir, log)
	if err != nil {
		return err
	}

	// Precedence: flags, preset, config.json, defaults.
	fromFile := config.DefaultConfig()
	if err := store.LoadConfig(fromFile); err != nil {
		return err
	}
	if presetSrc != "" {
		name := strings.TrimSuffix(filepath.Base(presetSrc), filepath.Ext(presetSrc))
		fromFile, err = preset.Load(ctx, presetSrc, store.PresetDir(), name, fromFile)
		if err != nil {
			return err
		}
		log.Info("loaded preset", "source", presetSrc)
	}
	config.Merge(cfg, fromFile, explicit)

	if saveConfig {
		if err := store.SaveConfig(cfg); err != nil {
			return err
		}
	}

	w, err := world.Generate(cfg, log)
	if err != nil {
		return err
	}
	for _, st := range strokes {
		if _, err := w.Apply(st.cx, st.cz, st.radius, st.delta); err != nil {
			return err
		}
	}

	if err := store.SaveTerrain(w); err != nil {
		return err
	}
	png, err := store.ExportPNG(w)
	if err != nil {
		return err
	}

	if catalogPath != "-" {
		if catalogPath == "" {
			catalogPath = filepath.Join(dataDir, "catalog.sqlite")
		}
		cat, err := catalog.Open(ctx, catalogPath)
		if err != nil {
			return err
		}
		defer cat.Close()
		if err := cat.RecordTerrain(ctx, w); err != nil {
			return fmt.Errorf("record terrain: %w", err)
		}
	}

	counts := w.BandCounts()
	spawn := w.SpawnPoint()
	log.Info("terrain ready",
		"id", w.ID(),
		"preview", png,
		"water", counts[heightfield.BandWater],
		"grass", counts[heightfield.BandGrass],
		"dirt", counts[heightfield.BandDirt],
		"rock", counts[heightfield.BandRock],
		"snow", counts[heightfield.BandSnow],
		"placementSites", len(w.PlacementSites()),
		"spawn", fmt.Sprintf("%g,%g,%g", spawn.X, spawn.Y, spawn.Z),
	)
	return nil
}
