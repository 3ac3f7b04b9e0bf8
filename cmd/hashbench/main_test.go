package main

import (
	"bytes"
	"encoding/csv"
	"hashbench/catalog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range catalog.Names() {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "murmur3_32                         cursor")
}

func TestList_Filter(t *testing.T) {
	out, _, err := execute(t, "list", "--filter", "crc32")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, "\n"))
	require.True(t, strings.HasSuffix(out, "2 algorithms\n"))
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "check", "-f", "crc32_ieee,adler32")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "crc32_ieee "))
	require.Contains(t, lines[0], "seed: 305419896")
	require.True(t, strings.HasSuffix(lines[0], "res:ed3e1945"))
	require.True(t, strings.HasSuffix(lines[1], "res:8c40150c"))
}

func TestSweep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stat.csv")
	out, logs, err := execute(t, "--filter=crc32,xxh3_64_stream", "--max-exp=3", "--out", path, "--progress=false")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(out, "\n"), "check run prints one line per algorithm")
	require.Contains(t, logs, "sweep done")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"name", "size", "duration", "duration(s)", "speed", "size_per_sec"}, records[0])
	require.Len(t, records[1:], 4*3)
	require.Equal(t, []string{"crc32_ieee", "1"}, records[1][:2])
	require.Equal(t, []string{"xxh3_64_stream", "8"}, records[12][:2])
}

func TestSweep_BadOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "stat.csv")
	_, _, err := execute(t, "--max-exp=0", "--out", path, "--check=false", "--progress=false")
	require.ErrorContains(t, err, "create ")
}

func TestSweep_BadFilter(t *testing.T) {
	_, _, err := execute(t, "--filter=nope", "--out", filepath.Join(t.TempDir(), "x.csv"))
	require.ErrorContains(t, err, "matches no algorithm")
}
