package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	wberrors "workbench.dev/workbench/internal/errors"
	"workbench.dev/workbench/internal/platform"
)

var testPlat = platform.FromHost("linux/amd64")

// execute runs the wb command tree with the given arguments and returns
// captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCmd("test", "none", "unknown", testPlat)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func propsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.properties")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestPropsGet(t *testing.T) {
	t.Parallel()

	path := propsFile(t, "build.target=dist\nbuild.mode=release")

	out, err := execute(t, "props", "get", "build.target", "--file", path)
	require.NoError(t, err)
	require.Equal(t, "dist\n", out)
}

func TestPropsGetMissingKey(t *testing.T) {
	t.Parallel()

	path := propsFile(t, "a=1")

	_, err := execute(t, "props", "get", "nope", "--file", path)
	require.Error(t, err)
	require.ErrorIs(t, err, wberrors.ErrKeyNotFound)
}

func TestPropsSetCreatesAndSorts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "new.properties")

	_, err := execute(t, "props", "set", "zeta", "26", "--file", path)
	require.NoError(t, err)
	_, err = execute(t, "props", "set", "alpha", "1", "--file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "alpha=1\nzeta=26", string(data))
}

func TestPropsSetRejectsBadKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{name: "equals sign", key: "bad=key"},
		{name: "colon separator", key: "bad:key"},
		{name: "space", key: "bad key"},
		{name: "tab", key: "bad\tkey"},
		{name: "newline", key: "bad\nkey"},
		{name: "hash comment marker", key: "#key"},
		{name: "bang comment marker", key: "!key"},
		{name: "empty", key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "new.properties")

			_, err := execute(t, "props", "set", tt.key, "v", "--file", path)
			require.Error(t, err)

			_, err = os.Stat(path)
			require.True(t, os.IsNotExist(err), "rejected key must not create the file")
		})
	}
}

func TestPropsUnset(t *testing.T) {
	t.Parallel()

	path := propsFile(t, "a=1\nb=2")

	_, err := execute(t, "props", "unset", "a", "--file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "b=2", string(data))

	_, err = execute(t, "props", "unset", "a", "--file", path)
	require.ErrorIs(t, err, wberrors.ErrKeyNotFound)
}

func TestPropsSortCanonicalizes(t *testing.T) {
	t.Parallel()

	path := propsFile(t, "# comment\nb=2\na=1")

	_, err := execute(t, "props", "sort", "--file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a=1\nb=2", string(data))
}

func TestPropsConvert(t *testing.T) {
	t.Parallel()

	path := propsFile(t, "name=wb\nversion=1")

	out, err := execute(t, "props", "convert", "--to", "yaml", "--file", path)
	require.NoError(t, err)
	require.Contains(t, out, "name: wb")
	require.Contains(t, out, `version: "1"`)

	out, err = execute(t, "props", "convert", "--to", "json", "--file", path)
	require.NoError(t, err)
	require.Contains(t, out, `"name": "wb"`)

	_, err = execute(t, "props", "convert", "--to", "toml", "--file", path)
	require.Error(t, err)
}

func TestPropsListFiltersByPrefix(t *testing.T) {
	t.Parallel()

	path := propsFile(t, "build.target=dist\nbuild.mode=release\nname=wb")

	out, err := execute(t, "props", "list", "--prefix", "build.", "--file", path)
	require.NoError(t, err)
	require.Contains(t, out, "build.target")
	require.Contains(t, out, "build.mode")
	require.NotContains(t, out, "name")
}

func TestPropsDecodeErrorSurfaces(t *testing.T) {
	t.Parallel()

	path := propsFile(t, `k=\u12x4`)

	_, err := execute(t, "props", "get", "k", "--file", path)
	require.Error(t, err)
	require.ErrorIs(t, err, wberrors.ErrMalformedProperties)
}

func TestPathExt(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "path", "ext", "lib/util.rb", ".go")
	require.NoError(t, err)
	require.Equal(t, "lib/util.go\n", out)
}

func TestPathNormWindows(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "path", "norm", "--windows", "--base", `c:\build`, "out/dist")
	require.NoError(t, err)
	require.Equal(t, "C:\\build\\out\\dist\n", out)
}

func TestPathLs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visible.txt"), []byte("x"), 0600))

	out, err := execute(t, "path", "ls", dir)
	require.NoError(t, err)
	require.Equal(t, ".hidden\nvisible.txt\n", out)
}

func TestEnvPrefix(t *testing.T) {
	t.Setenv("WB_CLI_TEST_KEY", "value")

	out, err := execute(t, "env", "--prefix", "WB_CLI_TEST_")
	require.NoError(t, err)
	require.Equal(t, "WB_CLI_TEST_KEY=value\n", out)
}

func TestPlatformReport(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "platform")
	require.NoError(t, err)
	require.Contains(t, out, "linux/amd64")
	require.Contains(t, out, "windows:")
	require.Contains(t, out, "false")
}
