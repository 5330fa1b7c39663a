package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tile]\nzoom = 8\n[input]\nkmzDir = \"/data/kmz\"\n"), 0o644))

	InitConf(path)

	assert.Equal(t, 8, conf.Tile.Zoom)
	assert.Equal(t, "/data/kmz", conf.Input.KmzDir)

	// 未配置的键取默认值
	assert.Equal(t, "S1burst", conf.Tile.BaseName)
	assert.Equal(t, ModeTile, conf.Task.Mode)
	assert.Equal(t, 1, conf.Overview.Zoom)
	assert.Equal(t, 1, conf.Overview.X)
	assert.Equal(t, 0, conf.Overview.Y)
	assert.Equal(t, 0.05, conf.Overview.Tolerance)
}
