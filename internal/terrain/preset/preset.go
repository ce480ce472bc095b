// Package preset fetches terrain configuration presets from any go-getter
// source: local paths, http(s) URLs, git repositories or object stores.
package preset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/heightfield/internal/terrain/config"
)

// FileName is the preset file looked up inside a fetched directory.
const FileName = "terrain.json"

// Fetch downloads src into dir/name and returns the path of the preset file.
// Sources ending in .json are fetched as a single file; anything else is
// fetched as a directory that must contain FileName.
func Fetch(ctx context.Context, src, dir, name string) (string, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	dst := filepath.Join(dir, name)
	if err := os.RemoveAll(dst); err != nil {
		return "", fmt.Errorf("clear preset %s: %w", dst, err)
	}

	mode := getter.ClientModeDir
	path := filepath.Join(dst, FileName)
	if isFile(src) {
		mode = getter.ClientModeFile
		path = dst + ".json"
		dst = path
	}

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: mode,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch preset %s: %w", src, err)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("preset %s has no %s", src, FileName)
		}
		return "", fmt.Errorf("stat preset: %w", err)
	}
	return path, nil
}

// Load fetches a preset and decodes it over a copy of base, so fields the
// preset omits keep their base values.
func Load(ctx context.Context, src, dir, name string, base *config.Config) (*config.Config, error) {
	path, err := Fetch(ctx, src, dir, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	cfg := *base
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", src, err)
	}
	return &cfg, nil
}

func isFile(src string) bool {
	// Drop go-getter query options (?ref=, ?checksum=) before looking at the extension.
	if i := strings.IndexByte(src, '?'); i >= 0 {
		src = src[:i]
	}
	return strings.HasSuffix(src, ".json")
}
