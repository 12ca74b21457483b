package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputLayout manages the output directory structure: summary tables
// under tables/ and rendered charts under charts/. File names are
// deterministic per dimension so repeated runs overwrite prior output.
type OutputLayout struct {
	BaseDir string
}

// NewOutputLayout creates a layout rooted at baseDir.
func NewOutputLayout(baseDir string) *OutputLayout {
	return &OutputLayout{BaseDir: baseDir}
}

// TablesDir returns the directory for exported CSV tables.
func (l *OutputLayout) TablesDir() string {
	return filepath.Join(l.BaseDir, "tables")
}

// ChartsDir returns the directory for rendered chart images.
func (l *OutputLayout) ChartsDir() string {
	return filepath.Join(l.BaseDir, "charts")
}

// Ensure creates both output directories.
func (l *OutputLayout) Ensure() error {
	for _, dir := range []string{l.TablesDir(), l.ChartsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return nil
}

// TablePath returns the full path for a named CSV table.
func (l *OutputLayout) TablePath(name string) string {
	return filepath.Join(l.TablesDir(), filepath.Base(name)+".csv")
}

// ChartPath returns the full path for a named PNG chart.
func (l *OutputLayout) ChartPath(name string) string {
	return filepath.Join(l.ChartsDir(), filepath.Base(name)+".png")
}
