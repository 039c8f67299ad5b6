package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/JonnyWalker81/habitpulse/backend/internal/analytics"
	"github.com/JonnyWalker81/habitpulse/backend/internal/models"
)

// ErrNoUser is returned when the file has no user_id column and no default user was given
var ErrNoUser = errors.New("no user_id column and no default user")

// HRVRecord is one parsed row of an HRV import file
type HRVRecord struct {
	Line      int
	UserID    string
	Date      time.Time
	RMSSD     *float64
	SDNN      *float64
	RestingHR *float64
}

// Reading converts the record into a reading measured at noon of its date in loc
func (r HRVRecord) Reading(loc *time.Location) *models.HRVReading {
	if loc == nil {
		loc = time.UTC
	}
	measuredAt := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 12, 0, 0, 0, loc)
	return &models.HRVReading{
		UserID:     r.UserID,
		MeasuredAt: measuredAt,
		RMSSDms:    r.RMSSD,
		SDNNms:     r.SDNN,
		RestingHR:  r.RestingHR,
		Notes:      "imported",
	}
}

// RowError reports a skipped input row
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error { return e.Err }

// ParseHRV reads a CSV with columns date, rmssd, sdnn, resting_hr and an
// optional user_id. Headers are case-insensitive. Rows with a missing user,
// an unparsable date, bad numbers or no measurement at all are skipped and
// reported in skipped; err is set only when the file itself is unreadable.
func ParseHRV(r io.Reader, defaultUserID string) (records []HRVRecord, skipped []RowError, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := indexColumns(header)
	if _, ok := cols["date"]; !ok {
		return nil, nil, fmt.Errorf("missing column %q", "date")
	}
	if _, ok := cols["user_id"]; !ok && defaultUserID == "" {
		return nil, nil, ErrNoUser
	}

	for line := 2; ; line++ {
		rec, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			var parseErr *csv.ParseError
			if errors.As(readErr, &parseErr) {
				skipped = append(skipped, RowError{Line: line, Err: readErr})
				continue
			}
			return records, skipped, fmt.Errorf("failed to read line %d: %w", line, readErr)
		}

		record, rowErr := parseHRVRow(rec, cols, defaultUserID)
		if rowErr != nil {
			skipped = append(skipped, RowError{Line: line, Err: rowErr})
			continue
		}
		record.Line = line
		records = append(records, record)
	}
	return records, skipped, nil
}

func parseHRVRow(rec []string, cols map[string]int, defaultUserID string) (HRVRecord, error) {
	var out HRVRecord

	out.UserID = field(rec, cols, "user_id")
	if out.UserID == "" {
		out.UserID = defaultUserID
	}
	if out.UserID == "" {
		return out, errors.New("missing user_id")
	}

	raw := field(rec, cols, "date")
	if raw == "" {
		return out, errors.New("missing date")
	}
	date, err := analytics.ParseDate(raw)
	if err != nil {
		return out, err
	}
	out.Date = date

	for _, m := range []struct {
		name string
		dst  **float64
	}{
		{"rmssd", &out.RMSSD},
		{"sdnn", &out.SDNN},
		{"resting_hr", &out.RestingHR},
	} {
		v := field(rec, cols, m.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || !(f > 0) || math.IsInf(f, 0) {
			return out, fmt.Errorf("invalid %s %q", m.name, v)
		}
		*m.dst = &f
	}

	if out.RMSSD == nil && out.SDNN == nil && out.RestingHR == nil {
		return out, errors.New("no measurements")
	}
	return out, nil
}
