// Package studentid implements the academic-year scoped student
// identifier series used on international admission records.
//
// Identifiers look like INT/INT-KV/2024-25/045: a fixed prefix, the
// academic year of issue and a zero-padded serial number. The serial
// restarts at 001 every academic year. Only the most recently issued
// identifier is persisted; Next derives the successor from it. The
// read-compute-insert-persist cycle is not serialized, so two callers
// issuing concurrently can compute the same identifier - the unique
// index on students.student_id turns that race into a duplicate-key
// failure for the second writer. A single atomically updated counter
// row would close the race; kept as-is to preserve the documented
// behavior.
package studentid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prefix is the fixed leading part of every identifier.
const Prefix = "INT/INT-KV"

// ErrMalformedSequenceState is returned when the persisted last-issued
// identifier does not match the expected shape. The sequencer fails
// closed rather than guessing a serial number.
var ErrMalformedSequenceState = errors.New("malformed last issued student ID")

// ID is the parsed form of a student identifier. Parsing happens once
// at the boundary; formatting back to a string happens only in String.
type ID struct {
	YearStart int // first calendar year of the academic year, e.g. 2024 for "2024-25"
	Seq       int // serial number within the academic year's series
}

// String formats the identifier: INT/INT-KV/{YYYY}-{YY}/{SEQ}.
// Seq is padded to three digits. Series past 999 widen the padding
// (1000 renders as "1000"); the serial is deliberately not bounds
// checked, matching the source behavior.
func (id ID) String() string {
	return fmt.Sprintf("%s/%s/%03d", Prefix, academicYearString(id.YearStart), id.Seq)
}

// AcademicYearStart returns the first calendar year of the academic
// year that contains now. The series follows the calendar year of the
// issue date: an identifier issued any time in 2024 belongs to 2024-25.
func AcademicYearStart(now time.Time) int {
	return now.Year()
}

// AcademicYear returns the display form of the academic year for now,
// e.g. "2024-25".
func AcademicYear(now time.Time) string {
	return academicYearString(AcademicYearStart(now))
}

func academicYearString(yearStart int) string {
	return fmt.Sprintf("%d-%02d", yearStart, (yearStart+1)%100)
}

// Parse validates and decomposes a stored identifier string. The input
// must have exactly four slash-delimited segments with the fixed
// prefix, an academic-year segment of the form YYYY-YY, and a numeric
// serial. Anything else is ErrMalformedSequenceState.
func Parse(s string) (ID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 4 || parts[0]+"/"+parts[1] != Prefix {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedSequenceState, s)
	}

	yearStart, err := parseAcademicYear(parts[2])
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedSequenceState, s)
	}

	// strconv.Atoi alone would accept "+45" and "0000045"; requiring
	// the segment to round-trip through the canonical rendering rejects
	// signs and surplus zero padding.
	seq, err := strconv.Atoi(parts[3])
	if err != nil || seq <= 0 || fmt.Sprintf("%03d", seq) != parts[3] {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedSequenceState, s)
	}

	return ID{YearStart: yearStart, Seq: seq}, nil
}

// parseAcademicYear validates a "YYYY-YY" segment and returns the
// starting year. The two-digit suffix must be the following year.
func parseAcademicYear(s string) (int, error) {
	start, suffix, found := strings.Cut(s, "-")
	if !found || len(start) != 4 || len(suffix) != 2 {
		return 0, errors.New("invalid academic year segment")
	}

	yearStart, err := strconv.Atoi(start)
	if err != nil || fmt.Sprintf("%04d", yearStart) != start {
		return 0, errors.New("invalid academic year start")
	}
	yearEnd, err := strconv.Atoi(suffix)
	if err != nil || fmt.Sprintf("%02d", yearEnd) != suffix {
		return 0, errors.New("invalid academic year suffix")
	}
	if (yearStart+1)%100 != yearEnd {
		return 0, errors.New("academic year suffix does not follow start year")
	}

	return yearStart, nil
}

// Next computes the identifier that follows last, relative to now.
//
// A nil last starts the series at 001 for now's academic year. A last
// identifier from an earlier (or later) academic year resets the
// serial to 001 for the current year; the stale counter is not carried
// over. Otherwise the serial is incremented by one.
//
// Next is pure. Persisting the result back to the last-ID store is the
// caller's responsibility and must happen only after the student
// record carrying the new identifier has been written.
func Next(last *ID, now time.Time) ID {
	current := AcademicYearStart(now)
	if last == nil || last.YearStart != current {
		return ID{YearStart: current, Seq: 1}
	}
	return ID{YearStart: current, Seq: last.Seq + 1}
}
