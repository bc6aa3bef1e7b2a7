package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = "paracli.yaml"

// Paths contains all the application paths.
// This is the single source of truth for file locations: every tool
// resolves its inputs and outputs relative to the executable directory,
// never the current working directory.
type Paths struct {
	ExecutableDir string
	DataDir       string
	RawDir        string
	ReportsDir    string
	LogsDir       string

	// Well-known data files
	RawCSV      string
	RawExcel    string
	CodesCSV    string
	PreparedCSV string

	// Well-known report files
	DescribeReport string

	// Local database for the prepared table
	GamesDB string
}

// GetPaths returns the application paths relative to the executable location.
//
// Directory structure:
//
//	<exe dir>/
//	  ├── paracli.yaml          (optional config)
//	  ├── data/
//	  │   ├── raw/              (raw games CSV / workbook, committee codes)
//	  │   ├── prepared.csv      (pipeline output)
//	  │   └── games.db          (optional SQLite load)
//	  ├── reports/              (describe / quality reports)
//	  └── logs/
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return pathsFromBase(filepath.Dir(exe)), nil
}

// pathsFromBase builds the path set rooted at the given directory.
// Split out from GetPaths so tests can use a temp directory.
func pathsFromBase(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	rawDir := filepath.Join(dataDir, "raw")
	reportsDir := filepath.Join(baseDir, "reports")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		RawDir:        rawDir,
		ReportsDir:    reportsDir,
		LogsDir:       filepath.Join(baseDir, "logs"),

		RawCSV:      filepath.Join(rawDir, "games_raw.csv"),
		RawExcel:    filepath.Join(rawDir, "games_all_raw.xlsx"),
		CodesCSV:    filepath.Join(rawDir, "npc_codes.csv"),
		PreparedCSV: filepath.Join(dataDir, "prepared.csv"),

		DescribeReport: filepath.Join(reportsDir, "describe.txt"),

		GamesDB: filepath.Join(dataDir, "games.db"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.RawDir,
		p.ReportsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetLogPath returns the path for a log file with the given name
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetReportPath returns the path for a report file with the given name
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetDataPath returns the path for a data file with the given name
func (p *Paths) GetDataPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}
