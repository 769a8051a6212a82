package archive

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "archive.db")

	a, err := Open(path)
	require.NoError(t, err)

	ok, err := a.Has(ctx, "mangaread:one piece:1053.3")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, a.Add(ctx, "mangaread:one piece:1053.3", "https://www.mangaread.org/manga/one-piece/chapter-1053-3/"))
	require.NoError(t, a.Add(ctx, "mangaread:one piece:1053.3", "https://www.mangaread.org/manga/one-piece/chapter-1053-3/"))

	ok, err = a.Has(ctx, "mangaread:one piece:1053.3")
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := a.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, a.Close())

	// entries survive reopening
	a, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	ok, err = a.Has(ctx, "mangaread:one piece:1053.3")
	require.NoError(t, err)
	assert.True(t, ok)
}
