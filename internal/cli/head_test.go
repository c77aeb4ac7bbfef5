package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/calvinalkan/configdirs/internal/cli"
)

func Test_Head_Prints_First_Dir_When_Env_Set(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Env["CONFIG_DIRS"] = "/etc/app,/home/user/.config/app"

	if got, want := c.MustRun("head"), "/etc/app"; got != want {
		t.Errorf("head=%q, want=%q", got, want)
	}
}

func Test_Head_Prints_Only_Dir_When_Env_Has_One(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Env["CONFIG_DIRS"] = "only-one"

	if got, want := c.MustRun("head"), "only-one"; got != want {
		t.Errorf("head=%q, want=%q", got, want)
	}
}

func Test_Head_Abs_Resolves_Relative_Dir_When_Invoked(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Env["CONFIG_DIRS"] = "cache,/other"

	if got, want := c.MustRun("head", "--abs"), filepath.Join(c.Dir, "cache"); got != want {
		t.Errorf("head=%q, want=%q", got, want)
	}
}

func Test_Head_Prints_Empty_Line_And_Warns_When_Env_Unset(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stdout, stderr, code := c.Run("head")

	if got, want := code, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if got, want := stdout, "\n"; got != want {
		t.Errorf("stdout=%q, want=%q", got, want)
	}

	cli.AssertContains(t, stderr, "warning:")
}
