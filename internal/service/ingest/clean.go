package ingest

import (
	"strconv"
	"strings"
	"time"
)

// nullWords are the tokens the source sheet uses for "no value". The
// comparison is exact (case-sensitive) by contract.
var nullWords = map[string]struct{}{
	"":     {},
	"nan":  {},
	"None": {},
	"NaN":  {},
	"<NA>": {},
	"N/A":  {},
}

// serialEpoch is the spreadsheet date-serial epoch (Excel/Sheets
// convention: day 1 is 1899-12-31, so day counts are relative to
// 1899-12-30).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Plausibility bounds for a cell read as a date serial. Anything outside
// is treated as a non-date number, not a date.
const (
	serialMin = 20000
	serialMax = 60000
)

// Day-first layouts in the order they are attempted. Unpadded layouts
// also accept zero-padded components.
var dateLayouts = []string{
	"2.1.2006",
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
	"2.1.2006 15:04:05",
	"2.1.2006 15:04",
	"2/1/2006 15:04",
}

// CleanText coerces a raw cell to display text: invisible characters and
// surrounding whitespace stripped, null-word tokens replaced by the
// placeholder. The placeholder is per call site; brand and technician use
// ticket.Unknown, status uses the empty string.
func CleanText(raw, placeholder string) string {
	s := strings.TrimSpace(invisibleReplacer.Replace(raw))
	if _, isNull := nullWords[s]; isNull {
		return placeholder
	}
	return s
}

// CleanDate coerces a raw cell to a calendar date. It never fails: a cell
// matching neither a day-first date string nor a plausible spreadsheet
// serial is simply a missing date (nil).
func CleanDate(raw string) *time.Time {
	s := strings.ReplaceAll(invisibleReplacer.Replace(raw), ",", " ")
	s = strings.Join(strings.Fields(s), " ")
	if _, isNull := nullWords[s]; isNull {
		return nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			d := truncateToDay(parsed)
			return &d
		}
	}

	// Serial fallback: Sheets sometimes hands back the raw day count.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial >= serialMin && serial <= serialMax {
			d := SerialToDate(serial)
			return &d
		}
	}

	return nil
}

// SerialToDate converts a spreadsheet day count to its calendar date.
// Fractional parts (time of day) are discarded.
func SerialToDate(serial float64) time.Time {
	return serialEpoch.AddDate(0, 0, int(serial))
}

// DateToSerial is the inverse of SerialToDate at day granularity.
func DateToSerial(d time.Time) int {
	return int(truncateToDay(d).Sub(serialEpoch).Hours() / 24)
}

// FormatDate renders a date back in the sheet's primary day-first format.
func FormatDate(d time.Time) string {
	return d.Format("02.01.2006")
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
