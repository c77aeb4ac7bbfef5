package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/configdirs/internal/dirs"
)

// HeadCmd returns the head command.
func HeadCmd(cfg *dirs.Config) *Command {
	fs := flag.NewFlagSet("head", flag.ContinueOnError)
	abs := fs.Bool("abs", false, "Resolve the directory against the working directory")

	return &Command{
		Flags: fs,
		Usage: "head [--abs]",
		Short: "Print the first configuration directory",
		Long:  "Print the first configuration directory. This is the directory handed to init-cache.",
		Exec: func(_ context.Context, io *IO, _ []string) error {
			dir := cfg.Dirs.Head()
			if *abs {
				dir = cfg.Abs(dir)
			}

			io.Println(dir)

			return nil
		},
	}
}
