package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func Test_Initialize_Uses_Clock_Truncated_To_Seconds_When_Creating(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 3, 1, 12, 30, 45, 999, time.FixedZone("X", 3600))

	d := NewDir()
	d.now = func() time.Time { return fixed }

	m, err := d.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	want := time.Date(2024, 3, 1, 11, 30, 45, 0, time.UTC)
	assert.True(t, want.Equal(m.InitializedAt), "got %s", m.InitializedAt)

	reopened, err := Open(m.Dir)
	require.NoError(t, err)
	assert.True(t, want.Equal(reopened.InitializedAt))
}

func Test_Initialize_Returns_ErrLock_When_Flock_Fails(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	d := NewDir()
	d.flock = func(int, int) error { return errBoom }

	dir := t.TempDir()

	_, err := d.Initialize(context.Background(), dir)
	require.ErrorIs(t, err, ErrLock)
	require.ErrorIs(t, err, errBoom)

	_, err = Open(dir)
	require.ErrorIs(t, err, ErrNotInitialized)
}

func Test_Initialize_Retries_Flock_When_Interrupted(t *testing.T) {
	t.Parallel()

	calls := 0

	d := NewDir()
	d.flock = func(fd int, how int) error {
		calls++

		if how == unix.LOCK_EX && calls == 1 {
			return unix.EINTR
		}

		return unix.Flock(fd, how)
	}

	m, err := d.Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.True(t, m.Created)
	assert.GreaterOrEqual(t, calls, 3, "expected retried lock plus unlock")
}
