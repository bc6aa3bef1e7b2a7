package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsFromBase(t *testing.T) {
	p := pathsFromBase("/opt/paracli")

	assert.Equal(t, "/opt/paracli", p.ExecutableDir)
	assert.Equal(t, filepath.Join("/opt/paracli", "data"), p.DataDir)
	assert.Equal(t, filepath.Join("/opt/paracli", "data", "raw"), p.RawDir)
	assert.Equal(t, filepath.Join("/opt/paracli", "data", "raw", "games_raw.csv"), p.RawCSV)
	assert.Equal(t, filepath.Join("/opt/paracli", "data", "raw", "npc_codes.csv"), p.CodesCSV)
	assert.Equal(t, filepath.Join("/opt/paracli", "data", "prepared.csv"), p.PreparedCSV)
	assert.Equal(t, filepath.Join("/opt/paracli", "reports", "describe.txt"), p.DescribeReport)
	assert.Equal(t, filepath.Join("/opt/paracli", "data", "games.db"), p.GamesDB)
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	p := pathsFromBase(base)

	require.NoError(t, p.EnsureDirectories())

	for _, dir := range []string{p.DataDir, p.RawDir, p.ReportsDir, p.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestPathHelpers(t *testing.T) {
	p := pathsFromBase("/base")

	assert.Equal(t, filepath.Join("/base", "logs", "prepare.log"), p.GetLogPath("prepare.log"))
	assert.Equal(t, filepath.Join("/base", "reports", "quality.txt"), p.GetReportPath("quality.txt"))
	assert.Equal(t, filepath.Join("/base", "data", "extra.csv"), p.GetDataPath("extra.csv"))
}

func TestGetPaths(t *testing.T) {
	p, err := GetPaths()
	require.NoError(t, err)
	assert.NotEmpty(t, p.ExecutableDir)
	assert.Equal(t, filepath.Join(p.DataDir, "prepared.csv"), p.PreparedCSV)
}
