package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	helloSum = "f60ce482e5cc1229f39d71313171a8d9f4ca3a87d066bf4b205effb528192a75f14f3271e2c1a90e1de53f275b4d4793eef2f5e31ea90d2ce29d2e481c36435f"
	emptySum = "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"
)

func runB2sum(t *testing.T, stdin string, args ...string) (string, error) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "CRITICAL"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSumStdin(t *testing.T) {
	out, err := runB2sum(t, "hello\n")
	require.NoError(t, err)
	require.Equal(t, helloSum+"  -\n", out)
}

func TestSumFiles(t *testing.T) {
	dir := t.TempDir()
	hello := writeFile(t, dir, "hello.txt", "hello\n")
	empty := writeFile(t, dir, "empty.txt", "")

	out, err := runB2sum(t, "", hello, empty)
	require.NoError(t, err)
	require.Equal(t, helloSum+"  "+hello+"\n"+emptySum+"  "+empty+"\n", out)

	out, err = runB2sum(t, "", hello, filepath.Join(dir, "missing"))
	require.Error(t, err)
	require.Equal(t, helloSum+"  "+hello+"\n", out)
}

func TestCheck(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	hello := writeFile(t, dir, "hello.txt", "hello\n")
	empty := writeFile(t, dir, "empty.txt", "")

	list := writeFile(t, dir, "sums", helloSum+"  "+hello+"\n"+emptySum+"  "+empty+"\n")
	out, err := runB2sum(t, "", "--check", list)
	require.NoError(err)
	require.Equal(hello+": OK\n"+empty+": OK\n", out)

	out, err = runB2sum(t, "", "--check", "--quiet", list)
	require.NoError(err)
	require.Empty(out)

	// Corrupt the file behind the first entry.
	writeFile(t, dir, "hello.txt", "goodbye\n")
	out, err = runB2sum(t, "", "-c", list)
	require.Error(err)
	require.Contains(err.Error(), "1 computed checksums did NOT match")
	require.Equal(hello+": FAILED\n"+empty+": OK\n", out)
}

func TestCheckMalformed(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.txt", "")
	list := "not a checksum line\n" + emptySum[:10] + "  " + empty + "\n" + emptySum + "  " + empty + "\n"

	out, err := runB2sum(t, list, "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 lines are improperly formatted")
	require.Equal(t, empty+": OK\n", out)
}
