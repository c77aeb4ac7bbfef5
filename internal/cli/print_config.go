package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/configdirs/internal/dirs"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *dirs.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the configuration directories in order and where they were loaded from.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, cfg)
		},
	}
}

func execPrintConfig(io *IO, cfg *dirs.Config) error {
	io.Println("effective_cwd=" + cfg.EffectiveCwd)

	for i, d := range cfg.Dirs.All() {
		io.Printf("dir[%d]=%s\n", i, d)
	}

	io.Println("head=" + cfg.Dirs.Head())

	io.Println("")
	io.Println("# sources")
	io.Println("dirs=" + cfg.Sources.Dirs)

	if cfg.Sources.Global != "" {
		io.Println("global_config=" + cfg.Sources.Global)
	}

	if cfg.Sources.Project != "" {
		io.Println("project_config=" + cfg.Sources.Project)
	}

	return nil
}
