package locator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taranathan/dibble/internal/domain"
)

func TestShardPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "two letter prefix", word: "cat", want: "c/ca.json"},
		{name: "single letter", word: "a", want: "a/a.json"},
		{name: "uppercase lowered", word: "Apple", want: "a/ap.json"},
		{name: "all caps", word: "ZEBRA", want: "z/ze.json"},
		{name: "two letters exactly", word: "of", want: "o/of.json"},
		{name: "accented first rune", word: "étude", want: "é/ét.json"},
		{name: "single uppercase letter", word: "I", want: "i/i.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ShardPath(tt.word)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("ShardPath(%q) = %q, want %q", tt.word, got, tt.want)
			}
			// Pure: the same input always derives the same path.
			if again := ShardPath(tt.word); again != got {
				t.Errorf("ShardPath(%q) not deterministic: %q then %q", tt.word, got, again)
			}
		})
	}
}

// writeShard places content at <root>/<shard path of word>.
func writeShard(t *testing.T, root, word, content string) {
	t.Helper()
	path := filepath.Join(root, ShardPath(word))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLocate_LocalRootWins(t *testing.T) {
	t.Parallel()

	local, user, system := t.TempDir(), t.TempDir(), t.TempDir()
	writeShard(t, local, "cat", `{"local":true}`)
	writeShard(t, user, "cat", `{"user":true}`)
	writeShard(t, system, "cat", `{"system":true}`)

	loc := New(local, user, system)
	data, path, err := loc.Locate("cat")
	require.NoError(t, err)
	require.Equal(t, `{"local":true}`, string(data))
	require.Equal(t, filepath.Join(local, "c", "ca.json"), path)
}

func TestLocate_FallsThroughToLaterRoots(t *testing.T) {
	t.Parallel()

	local, user, system := t.TempDir(), t.TempDir(), t.TempDir()
	writeShard(t, system, "cat", `{"system":true}`)

	loc := New(local, user, system)
	data, path, err := loc.Locate("cat")
	require.NoError(t, err)
	require.Equal(t, `{"system":true}`, string(data))
	require.Equal(t, filepath.Join(system, "c", "ca.json"), path)
}

func TestLocate_NotFound(t *testing.T) {
	t.Parallel()

	local, user, system := t.TempDir(), t.TempDir(), t.TempDir()

	loc := New(local, user, system)
	_, _, err := loc.Locate("cat")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrNotFound)

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	require.Equal(t, "cat", nfe.Word)
	require.Equal(t, []string{
		filepath.Join(local, "c", "ca.json"),
		filepath.Join(user, "c", "ca.json"),
		filepath.Join(system, "c", "ca.json"),
	}, nfe.Searched)

	// The message names the installed locations, not the local dev path.
	msg := err.Error()
	require.Contains(t, msg, filepath.Join(user, "c", "ca.json"))
	require.Contains(t, msg, filepath.Join(system, "c", "ca.json"))
	require.NotContains(t, msg, filepath.Join(local, "c", "ca.json"))
}

func TestDefaultRoots(t *testing.T) {
	t.Parallel()

	roots := DefaultRoots()
	require.Len(t, roots, 3)
	require.Equal(t, LocalRoot, roots[0])
	require.Equal(t, SystemRoot, roots[2])
	require.True(t, filepath.IsAbs(roots[1]), "user data root should be absolute, got %q", roots[1])
}

func TestDataRoot(t *testing.T) {
	t.Parallel()

	root := DataRoot(Vendor, App)
	require.NotEmpty(t, root)
	require.True(t, filepath.IsAbs(root))
	// Deterministic for a fixed environment.
	require.Equal(t, root, DataRoot(Vendor, App))
}

func TestLocate_ErrorIsNil(t *testing.T) {
	t.Parallel()

	// errors.Is must see through the wrapper even when the error travels
	// as a plain error value.
	var err error = &NotFoundError{Word: "cat"}
	require.True(t, errors.Is(err, domain.ErrNotFound))
}
