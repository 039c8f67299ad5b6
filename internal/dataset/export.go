// Package dataset reads and writes the offline CSV files used for analysis:
// the check-in training export and per-day HRV imports.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
	"github.com/JonnyWalker81/habitpulse/backend/internal/stats"
)

// ExportHeader is the column layout of the training export
var ExportHeader = []string{"mood", "status", "hrv_rmssd", "completed"}

// Row is one line of the training export. Completed is true iff the status is ok.
type Row struct {
	Mood      *int
	Status    models.Status
	HRVRMSSD  *float64
	Completed bool
}

// RowFromCheckIn projects a check-in onto the export columns
func RowFromCheckIn(c models.CheckIn) Row {
	return Row{
		Mood:      c.Mood,
		Status:    c.Status,
		HRVRMSSD:  c.HRVRMSSD,
		Completed: c.Status == models.StatusOK,
	}
}

func (r Row) record() []string {
	mood := ""
	if r.Mood != nil {
		mood = strconv.Itoa(*r.Mood)
	}
	hrv := ""
	if r.HRVRMSSD != nil {
		hrv = strconv.FormatFloat(*r.HRVRMSSD, 'f', -1, 64)
	}
	completed := "0"
	if r.Completed {
		completed = "1"
	}
	return []string{mood, string(r.Status), hrv, completed}
}

// WriteCheckIns writes the header and one row per check-in, returning the row count
func WriteCheckIns(w io.Writer, checkIns []models.CheckIn) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return 0, err
	}
	for i, c := range checkIns {
		if err := cw.Write(RowFromCheckIn(c).record()); err != nil {
			return i, err
		}
	}
	cw.Flush()
	return len(checkIns), cw.Error()
}

// ReadRows parses a training export. Columns are matched by header name, so
// extra columns and reordering are tolerated.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty dataset")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := indexColumns(header)
	for _, name := range ExportHeader {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		get := func(name string) string { return field(rec, cols, name) }
		row := Row{Status: models.Status(get("status"))}
		if v := get("mood"); v != "" {
			mood, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid mood %q", line, v)
			}
			row.Mood = &mood
		}
		if v := get("hrv_rmssd"); v != "" {
			hrv, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid hrv_rmssd %q", line, v)
			}
			row.HRVRMSSD = &hrv
		}
		switch v := get("completed"); v {
		case "1":
			row.Completed = true
		case "0", "":
		default:
			return nil, fmt.Errorf("line %d: invalid completed %q", line, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// NumericColumns returns the mood and hrv_rmssd columns over the rows where
// both are present, ready for stats.QuickVIF.
func NumericColumns(rows []Row) (mood, hrv []float64) {
	for _, r := range rows {
		if r.Mood == nil || r.HRVRMSSD == nil {
			continue
		}
		mood = append(mood, float64(*r.Mood))
		hrv = append(hrv, *r.HRVRMSSD)
	}
	return mood, hrv
}

// SplitByHRV groups completion outcomes by whether RMSSD is at least threshold.
// Rows without an RMSSD value belong to neither group.
func SplitByHRV(rows []Row, threshold float64) (high, low stats.ProportionSample) {
	for _, r := range rows {
		if r.HRVRMSSD == nil {
			continue
		}
		g := &low
		if *r.HRVRMSSD >= threshold {
			g = &high
		}
		g.Total++
		if r.Completed {
			g.Successes++
		}
	}
	return high, low
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	return cols
}

func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
