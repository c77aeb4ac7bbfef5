package dirs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/configdirs/internal/dirs"
)

func Test_Split_Returns_One_Empty_Element_When_Input_Is_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{""}, dirs.Split(""))
}

func Test_Split_Keeps_Empty_Entries_When_Input_Has_Extra_Commas(t *testing.T) {
	t.Parallel()

	got := dirs.Split("/a,,/b,")

	if diff := cmp.Diff([]string{"/a", "", "/b", ""}, got); diff != "" {
		t.Errorf("Split mismatch (-want +got):\n%s", diff)
	}
}

func Test_FromEnv_Returns_Paths_In_Order_When_Variable_Set(t *testing.T) {
	t.Parallel()

	env := map[string]string{dirs.EnvVar: "/etc/app,/home/user/.config/app"}

	got, err := dirs.FromEnv(env)
	require.NoError(t, err)

	assert.Equal(t, "/etc/app", got.Head())
	assert.Equal(t, []string{"/etc/app", "/home/user/.config/app"}, got.Slice())
}

func Test_FromEnv_Returns_Single_Empty_Dir_When_Variable_Unset(t *testing.T) {
	t.Parallel()

	// An unset variable is not an empty list: "" splits into [""].
	got, err := dirs.FromEnv(map[string]string{})
	require.NoError(t, err)

	assert.Empty(t, got.Head())
	assert.Equal(t, 1, got.Len())

	got, err = dirs.FromEnv(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got.Slice())
}

func Test_FromEnv_Returns_Single_Dir_When_Variable_Has_No_Comma(t *testing.T) {
	t.Parallel()

	got, err := dirs.FromEnv(map[string]string{dirs.EnvVar: "only-one"})
	require.NoError(t, err)

	assert.Equal(t, "only-one", got.Head())
	assert.Empty(t, got.Tail())
}
