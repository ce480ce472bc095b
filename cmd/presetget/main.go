package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/heightfield/internal/terrain/preset"
)

func main() {
	var (
		src  = flag.String("src", "", "go-getter source (e.g. git::https://example.com/presets.git//alpine)")
		out  = flag.String("o", "./data/presets", "output dir path")
		name = flag.String("name", "default", "preset name")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *src == "" {
		log.Error("source required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("start downloading preset", "source", *src, "name", *name)
	path, err := preset.Fetch(ctx, *src, *out, *name)
	if err != nil {
		log.Error("download preset", "error", err)
		os.Exit(1)
	}
	log.Info("done downloading preset", "path", path)
}
