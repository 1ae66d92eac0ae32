package artifact

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectPaths(t *testing.T, root string) ([]string, error) {
	t.Helper()
	var paths []string
	for path, err := range Walk(root) {
		if err != nil {
			return paths, err
		}
		rel, relErr := filepath.Rel(root, path)
		require.NoError(t, relErr)
		paths = append(paths, filepath.ToSlash(rel))
	}
	return paths, nil
}

func TestWalk_Nested(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Token.sol/Token.json", "{}")
	writeFile(t, root, "Token.sol/Token.dbg.json", "{}")
	writeFile(t, root, "access/Ownable.sol/Ownable.json", "{}")
	writeFile(t, root, "a/b/c/d/Deep.json", "{}")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty", "dir"), 0o755))

	paths, err := collectPaths(t, root)
	require.NoError(t, err)

	sort.Strings(paths)
	assert.Equal(t, []string{
		"Token.sol/Token.dbg.json",
		"Token.sol/Token.json",
		"a/b/c/d/Deep.json",
		"access/Ownable.sol/Ownable.json",
	}, paths)
}

func TestWalk_EmptyRoot(t *testing.T) {
	paths, err := collectPaths(t, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := collectPaths(t, filepath.Join(t.TempDir(), "artifacts", "contracts"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRootNotFound))
}

func TestWalk_RootIsFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "contracts", "not a dir")
	_, err := collectPaths(t, path)
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestWalk_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "A.json", "{}")
	writeFile(t, root, "B.json", "{}")
	writeFile(t, root, "C.json", "{}")

	count := 0
	for _, err := range Walk(root) {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalk_SkipsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "real/Token.json", "{}")
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	paths, err := collectPaths(t, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"real/Token.json"}, paths)
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Token.sol/Token.json", `{"contractName": "Token", "bytecode": "0x6080604052"}`)
	writeFile(t, root, "Token.sol/Token.dbg.json", `{"_format": "hh-sol-dbg-1"}`)
	writeFile(t, root, "IERC20.sol/IERC20.json", `{"contractName": "IERC20", "bytecode": "0x"}`)
	writeFile(t, root, "Broken.sol/Broken.json", `{not json`)
	writeFile(t, root, "artifacts.d.ts", `{"bytecode": "0x6080604052"}`)
	writeFile(t, root, "Vault.sol/Vault.json", `{"contractName": "Vault", "bytecode": "0x60806040"}`)

	records, err := Collect(root, NewExtractor(nil, false))
	require.NoError(t, err)

	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	require.Len(t, records, 2)
	assert.Equal(t, "Token", records[0].Name)
	assert.Equal(t, 5, records[0].SizeBytes)
	assert.Equal(t, "Vault", records[1].Name)
	assert.Equal(t, 4, records[1].SizeBytes)
}

func TestCollect_EmptyRoot(t *testing.T) {
	records, err := Collect(t.TempDir(), NewExtractor(nil, false))
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestCollect_MissingRoot(t *testing.T) {
	records, err := Collect(filepath.Join(t.TempDir(), "missing"), NewExtractor(nil, false))
	assert.ErrorIs(t, err, ErrRootNotFound)
	assert.Nil(t, records)
}
