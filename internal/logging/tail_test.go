package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var all []string
	var b strings.Builder
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("line %d", i)
		all = append(all, line)
		b.WriteString(line + "\n")
	}
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"zero", 0, nil},
		{"partial", 3, all[7:]},
		{"wraps_ring", 4, all[6:]},
		{"exact", 10, all},
		{"more_than_file", 25, all},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Tail(path, tc.n)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Tail(%d) mismatch (-want +got):\n%s", tc.n, diff)
			}
		})
	}
}

func TestTail_HugeCountOnShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	got, err := Tail(path, 1<<40)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"one", "two"}, got); diff != "" {
		t.Fatalf("Tail(1<<40) mismatch (-want +got):\n%s", diff)
	}
}

func TestTail_MissingFile(t *testing.T) {
	got, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 5)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTail_ReadsLoggerOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, closer, err := New(Options{Level: "debug", Path: path, HumanReadable: true})
	require.NoError(t, err)
	log.Info().Msg("first")
	log.Debug().Str("panel", "gallery").Msg("second")
	require.NoError(t, closer.Close())

	lines, err := Tail(path, 1)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "second")
	require.Contains(t, lines[0], "panel=gallery")
}
