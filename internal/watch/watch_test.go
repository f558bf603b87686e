package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.svg")
	require.NoError(t, os.WriteFile(path, []byte("<svg/>"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "other.svg"), []byte("x"), 0o644)
		_ = os.WriteFile(path, []byte(`<svg viewBox="0 0 1 1"/>`), 0o644)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Next(ctx))
}

func TestIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.svg")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.svg"), []byte("x"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Next(ctx), context.DeadlineExceeded)
}

func TestCmdAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.svg")
	w, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())
	require.NoError(t, w.Close())
	assert.Nil(t, w.Cmd()())
}
