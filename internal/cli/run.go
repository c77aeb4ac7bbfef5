package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/configdirs/internal/cache"
	"github.com/calvinalkan/configdirs/internal/dirs"
)

// CacheInitializer prepares the cache directory it is given.
type CacheInitializer interface {
	Initialize(ctx context.Context, dir string) (cache.Manifest, error)
}

// Run is the main entry point. Returns exit code.
//
// sigCh may be nil. A value received on it cancels the running command.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	return run(in, out, errOut, args, env, sigCh, cache.NewDir())
}

func run(
	_ io.Reader, out, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal, initializer CacheInitializer,
) int {
	o := NewIO(out, errOut)

	globals := flag.NewFlagSet("cfgdirs", flag.ContinueOnError)
	globals.SetInterspersed(false)
	globals.SetOutput(&strings.Builder{})

	cwd := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	configPath := globals.StringP("config", "c", "", "Use specified config `file`")
	dirsOverride := globals.String("dirs", "", "Comma-separated directory `list` (overrides "+dirs.EnvVar+")")
	help := globals.BoolP("help", "h", false, "Show help")

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.Parse(args)
	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		printUsage(o.ErrPrintln, globals, nil)

		return 1
	}

	rest := globals.Args()

	if *help || len(rest) == 0 {
		printUsage(o.Println, globals, commands(&dirs.Config{}, initializer))

		return 0
	}

	cfg, err := dirs.LoadConfig(dirs.LoadConfigInput{
		WorkDirOverride: *cwd,
		ConfigPath:      *configPath,
		DirsOverride:    *dirsOverride,
		HasDirsOverride: globals.Changed("dirs"),
		Env:             env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	var cmd *Command

	for _, c := range commands(&cfg, initializer) {
		if c.Name() == rest[0] {
			cmd = c

			break
		}
	}

	if cmd == nil {
		o.ErrPrintln("error: unknown command:", rest[0])
		o.ErrPrintln()
		printUsage(o.ErrPrintln, globals, commands(&cfg, initializer))

		return 1
	}

	for _, idx := range cfg.EmptyEntries() {
		o.Warn(
			fmt.Sprintf("directory %d (from %s) is empty", idx, cfg.Sources.Dirs),
			"remove stray commas from "+dirs.EnvVar+" or set a directory",
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	code := cmd.Run(ctx, o, rest[1:])

	return max(code, o.Finish())
}

func commands(cfg *dirs.Config, initializer CacheInitializer) []*Command {
	return []*Command{
		PrintConfigCmd(cfg),
		HeadCmd(cfg),
		InitCacheCmd(cfg, initializer),
	}
}

func printUsage(emit func(...any), globals *flag.FlagSet, cmds []*Command) {
	emit("cfgdirs - resolve configuration directories and initialize the cache")
	emit()
	emit("Usage: cfgdirs [global flags] <command> [args]")
	emit()
	emit("Global flags:")

	var buf strings.Builder
	globals.SetOutput(&buf)
	globals.PrintDefaults()
	globals.SetOutput(&strings.Builder{})
	emit(strings.TrimRight(buf.String(), "\n"))

	if len(cmds) == 0 {
		return
	}

	emit()
	emit("Commands:")

	for _, c := range cmds {
		emit(c.HelpLine())
	}
}
