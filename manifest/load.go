package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"runtime"
	"strings"

	"github.com/skosovsky/templatest"

	"golang.org/x/sync/errgroup"
)

// LoadOption configures LoadFS.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger LoadFS reports loaded files to.
// Default is the target registry's logger.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// LoadFS parses every .yaml/.yml file under root and adds the templates to reg.
// Files are parsed concurrently but added in lexical path order, so ids are
// deterministic. Stops at the first parse error or name conflict; templates
// added before a conflict stay in reg.
func LoadFS(ctx context.Context, fsys fs.FS, root string, reg *templatest.Registered, opts ...LoadOption) error {
	cfg := &loadConfig{logger: reg.Logger()}
	for _, opt := range opts {
		opt(cfg)
	}

	var paths []string
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (!strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml")) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return err
	}

	parsed := make([][]templatest.Template, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ts, err := ParseFS(fsys, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			parsed[i] = ts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, ts := range parsed {
		for _, t := range ts {
			if err := reg.Add(t.Name, t.Template, t.Expected); err != nil {
				return fmt.Errorf("%s: %w", paths[i], err)
			}
		}
		cfg.logger.Debug("manifest loaded", "path", paths[i], "templates", len(ts))
	}
	return nil
}
