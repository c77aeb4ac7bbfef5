package cli

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/configdirs/internal/cache"
	"github.com/calvinalkan/configdirs/internal/dirs"
)

// InitCacheCmd returns the init-cache command.
func InitCacheCmd(cfg *dirs.Config, initializer CacheInitializer) *Command {
	fs := flag.NewFlagSet("init-cache", flag.ContinueOnError)
	dryRun := fs.Bool("dry-run", false, "Print the cache directory without touching disk")

	return &Command{
		Flags: fs,
		Usage: "init-cache [--dry-run]",
		Short: "Initialize the cache in the first configuration directory",
		Long: `Initialize the cache in the first configuration directory.

Creates the directory if needed and writes a cache manifest into it.
Running it again on an initialized directory changes nothing.`,
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			return execInitCache(ctx, io, cfg, initializer, *dryRun)
		},
	}
}

func execInitCache(ctx context.Context, io *IO, cfg *dirs.Config, initializer CacheInitializer, dryRun bool) error {
	dir := cfg.Abs(cfg.Dirs.Head())
	if dir == "" {
		return fmt.Errorf("%w: first configured directory (from %s) is empty", cache.ErrDirEmpty, cfg.Sources.Dirs)
	}

	if dryRun {
		io.Println("would initialize", dir)

		return nil
	}

	m, err := initializer.Initialize(ctx, dir)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted: %w", err)
		}

		return fmt.Errorf("initialize cache: %w", err)
	}

	if m.Created {
		io.Println("initialized", m.Dir)
	} else {
		io.Println("already initialized", m.Dir)
	}

	return nil
}
