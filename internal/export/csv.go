package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/BerkeKaanDinler/fitness-web/internal/fitness"
)

// MetricsToCSV writes one row per day of the weekly metrics.
func MetricsToCSV(m fitness.WeeklyMetrics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Week Start", "Day", "Weight (kg)", "Minutes", "Steps"}); err != nil {
		return err
	}

	for _, key := range fitness.DayKeys {
		e := m.Entries[key]
		weight := ""
		if e.Weight != nil {
			weight = fmt.Sprintf("%.1f", *e.Weight)
		}
		row := []string{
			m.WeekStart,
			fitness.DayName(key),
			weight,
			fmt.Sprintf("%d", e.Minutes),
			fmt.Sprintf("%d", e.Steps),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
