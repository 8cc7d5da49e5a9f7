// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dicebalance/builder"
	"github.com/katalvlaran/dicebalance/internal/config"
)

func TestRun_CatalogDie(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), config.Config{Die: "d4", Workers: 1, ListCorners: true}, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "d4: 4 faces, 4 corners, 1 candidates searched")
	assert.Contains(t, got, "spread 0.372678")
	assert.Contains(t, got, "faces  [1|1 2|2 3|4 4|3]")
	assert.Contains(t, got, "corners\n[1|1 2|2 3|4]")
}

func TestRun_File(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Config{File: filepath.Join("..", "..", "descriptor", "testdata", "d10.die"), Workers: 2}
	require.NoError(t, run(context.Background(), cfg, &out))
	assert.True(t, strings.HasPrefix(out.String(), "d10: 10 faces, 12 corners, 24 candidates searched"), out.String())
}

func TestRun_CacheRoundTrip(t *testing.T) {
	cfg := config.Config{Die: "d6", Workers: 1, CacheDir: t.TempDir()}

	var first, second bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &first))
	require.NoError(t, run(context.Background(), cfg, &second))

	assert.Contains(t, first.String(), "2 candidates searched")
	assert.Contains(t, second.String(), "2 candidates cached")
	assert.Contains(t, second.String(), "faces  [1|1 2|2 3|3 4|4 5|5 6|6]")

	cfg.NoCache = true
	var third bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &third))
	assert.Contains(t, third.String(), "searched")
}

func TestRun_Dump(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), config.Config{Die: "d6", Workers: 1, Dump: "yaml"}, &out))
	assert.Contains(t, out.String(), "name: d6")
	assert.Contains(t, out.String(), "faces: 6")
	assert.NotContains(t, out.String(), "spread")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"unknown die", config.Config{Die: "d7", Workers: 1}},
		{"missing file", config.Config{File: filepath.Join(t.TempDir(), "nope.yaml"), Workers: 1}},
		{"unknown format", config.Config{File: "die.json", Workers: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(context.Background(), tt.cfg, &bytes.Buffer{}))
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, config.Config{Die: "d12", Workers: 1}, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTargets_All(t *testing.T) {
	descs, err := targets(config.Config{All: true})
	require.NoError(t, err)
	require.Len(t, descs, len(builder.All()))
	for i, kind := range builder.All() {
		assert.Equal(t, kind.String(), descs[i].Name)
	}
}
