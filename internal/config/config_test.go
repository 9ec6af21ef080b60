// SPDX-License-Identifier: MIT
package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/internal/config"
)

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, config.StrategyDFS, cfg.Counter.Strategy)
	assert.Zero(t, cfg.Counter.Workers)
	assert.False(t, cfg.Input.Strict)
	assert.Empty(t, cfg.Metrics.Textfile)
	assert.NoError(t, config.Validate(cfg))
}

func TestNewLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ccount.yaml")
	writeConfig(t, path, `
log:
  format: json
counter:
  strategy: parallel
  workers: 4
input:
  strict: true
metrics:
  textfile: /tmp/ccount.prom
`)

	l, err := config.NewLoader(path)
	require.NoError(t, err)
	cfg := l.Config()
	assert.Equal(t, "info", cfg.Log.Level, "defaulted")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, config.StrategyParallel, cfg.Counter.Strategy)
	assert.Equal(t, 4, cfg.Counter.Workers)
	assert.True(t, cfg.Input.Strict)
	assert.Equal(t, "/tmp/ccount.prom", cfg.Metrics.Textfile)
}

func TestNewLoader_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := config.NewLoader(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	writeConfig(t, bad, "counter: [unclosed")
	_, err = config.NewLoader(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeConfig(t, invalid, "counter:\n  strategy: bfs\n  workers: -1\nlog:\n  level: loud\n")
	_, err = config.NewLoader(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown strategy "bfs"`)
	assert.Contains(t, err.Error(), "counter.workers")
	assert.Contains(t, err.Error(), `unknown level "loud"`)
}

func TestReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ccount.yaml")
	writeConfig(t, path, "counter:\n  strategy: dfs\n")
	l, err := config.NewLoader(path)
	require.NoError(t, err)

	var got *config.Config
	l.OnChange(func(c *config.Config) { got = c })

	writeConfig(t, path, "counter:\n  strategy: unionfind\n")
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, config.StrategyUnionFind, cfg.Counter.Strategy)
	assert.Same(t, cfg, got)
	assert.Same(t, cfg, l.Config())

	writeConfig(t, path, "counter:\n  strategy: nope\n")
	_, err = l.Reload()
	assert.Error(t, err)
	assert.Equal(t, config.StrategyUnionFind, l.Config().Counter.Strategy, "previous config kept")
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ccount.yaml")
	writeConfig(t, path, "counter:\n  strategy: dfs\n")
	l, err := config.NewLoader(path)
	require.NoError(t, err)

	var reloads atomic.Int32
	l.OnChange(func(*config.Config) { reloads.Add(1) })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeConfig(t, path, "counter:\n  strategy: parallel\n")
	require.Eventually(t, func() bool {
		return l.Config().Counter.Strategy == config.StrategyParallel
	}, 5*time.Second, 20*time.Millisecond)
	assert.Positive(t, reloads.Load())

	stop()
	stop()
}

func TestWatch_InvalidReloadLogsToLoaderLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ccount.yaml")
	writeConfig(t, path, "counter:\n  strategy: dfs\n")
	l, err := config.NewLoader(path)
	require.NoError(t, err)

	var buf lockedBuffer
	l.SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeConfig(t, path, "counter:\n  strategy: nope\n")
	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), `"msg":"config reload skipped"`)
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, config.StrategyDFS, l.Config().Counter.Strategy)
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
