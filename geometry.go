package asciiprint

import "fmt"

// GridSize returns the number of character columns and rows needed to print
// a srcW x srcH image across the configured pages.
//
// The columns span every page plus a gap on both sides of each join. Rows
// keep the source aspect ratio, corrected by rowFrequency/pitch because a
// character cell is taller than it is wide.
func GridSize(cfg Config, srcW, srcH int) (columns, rows int, err error) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, &ConfigError{Field: "source size", Reason: fmt.Sprintf("%dx%d has no pixels", srcW, srcH)}
	}
	columns = gridColumns(cfg)
	rows = int(float64(columns) * (float64(srcH) / float64(srcW)) * (float64(cfg.RowFrequency) / float64(cfg.Pitch)))
	if columns < 1 || rows < 1 {
		return 0, 0, &ConfigError{Field: "grid", Reason: fmt.Sprintf("%dx%d characters is empty", columns, rows)}
	}
	return columns, rows, nil
}

func gridColumns(cfg Config) int {
	inches := float64(cfg.Pages)*cfg.PageWidth + float64(cfg.Gap*(cfg.Pages-1)*2)
	return int(inches * float64(cfg.Pitch))
}
