package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the fixed column order for exported schedules.
var csvHeader = []string{
	"element_id", "type", "material", "material_name",
	"length_ft", "width_ft", "height_ft", "volume_cuft", "load_bearing",
}

// WriteCSV writes schedule entries as CSV with a header row.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, entry := range entries {
		record := []string{
			entry.ElementID,
			entry.Type,
			entry.Material,
			entry.MaterialName,
			formatFloat(entry.Length),
			formatFloat(entry.Width),
			formatFloat(entry.Height),
			formatFloat(entry.Volume),
			strconv.FormatBool(entry.LoadBearing),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes schedule entries to a CSV file.
func WriteCSVFile(filename string, entries []Entry) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, entries); err != nil {
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
