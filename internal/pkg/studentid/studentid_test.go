package studentid

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestAcademicYear(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-25", AcademicYear(date(2024, time.September, 1)))
	assert.Equal(t, "2025-26", AcademicYear(date(2025, time.January, 15)))
	// Century rollover keeps the two-digit suffix zero padded.
	assert.Equal(t, "2099-00", AcademicYear(date(2099, time.June, 30)))
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("well-formed", func(t *testing.T) {
		t.Parallel()
		id, err := Parse("INT/INT-KV/2024-25/045")
		require.NoError(t, err)
		assert.Equal(t, 2024, id.YearStart)
		assert.Equal(t, 45, id.Seq)
	})

	t.Run("round-trips through String", func(t *testing.T) {
		t.Parallel()
		id, err := Parse("INT/INT-KV/2023-24/001")
		require.NoError(t, err)
		assert.Equal(t, "INT/INT-KV/2023-24/001", id.String())
	})

	t.Run("widened serial parses back", func(t *testing.T) {
		t.Parallel()
		id, err := Parse("INT/INT-KV/2024-25/1000")
		require.NoError(t, err)
		assert.Equal(t, 1000, id.Seq)
	})

	t.Run("malformed inputs fail closed", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{
			"",
			"INT/INT-KV/2024-25",             // missing serial
			"INT/INT-KV/2024-25/045/extra",   // too many segments
			"EXT/INT-KV/2024-25/045",         // wrong prefix
			"INT/INT-KV/2024/045",            // not an academic year pair
			"INT/INT-KV/2024-26/045",         // suffix does not follow start year
			"INT/INT-KV/2024-25/abc",         // non-numeric serial
			"INT/INT-KV/2024-25/000",         // serials start at 001
			"INT/INT-KV/2024-25/+45",         // signed serial
			"INT/INT-KV/2024-25/0000045",     // surplus zero padding
			"INT/INT-KV/2024-25/0100",        // padded past three digits
			"INT/INT-KV/24-25/045",           // two-digit start year
			"INT/INT-KV/+202-03/045",         // signed start year
			"random garbage",
		} {
			_, err := Parse(s)
			assert.ErrorIs(t, err, ErrMalformedSequenceState, "input %q", s)
		}
	})
}

func TestNext(t *testing.T) {
	t.Parallel()

	now := date(2024, time.October, 3)

	t.Run("no prior identifier starts at 001", func(t *testing.T) {
		t.Parallel()
		id := Next(nil, now)
		assert.Equal(t, "INT/INT-KV/2024-25/001", id.String())
	})

	t.Run("same academic year increments", func(t *testing.T) {
		t.Parallel()
		last := &ID{YearStart: 2024, Seq: 45}
		id := Next(last, now)
		assert.Equal(t, "INT/INT-KV/2024-25/046", id.String())
	})

	t.Run("new academic year resets to 001", func(t *testing.T) {
		t.Parallel()
		last := &ID{YearStart: 2023, Seq: 45}
		id := Next(last, now)
		assert.Equal(t, "INT/INT-KV/2024-25/001", id.String())
	})

	t.Run("increment preserves zero padding below 100", func(t *testing.T) {
		t.Parallel()
		for seq, want := range map[int]string{
			1:   "INT/INT-KV/2024-25/002",
			9:   "INT/INT-KV/2024-25/010",
			99:  "INT/INT-KV/2024-25/100",
			998: "INT/INT-KV/2024-25/999",
		} {
			id := Next(&ID{YearStart: 2024, Seq: seq}, now)
			assert.Equal(t, want, id.String())
		}
	})

	t.Run("serial past 999 widens the padding", func(t *testing.T) {
		t.Parallel()
		// Known defect carried over from the source system: the serial
		// is not capped at three digits.
		id := Next(&ID{YearStart: 2024, Seq: 999}, now)
		assert.Equal(t, "INT/INT-KV/2024-25/1000", id.String())
	})
}

func TestNextFromStoredString(t *testing.T) {
	t.Parallel()

	// The full boundary flow: parse the persisted value, compute the
	// successor, format for storage.
	last, err := Parse("INT/INT-KV/2023-24/045")
	require.NoError(t, err)

	next := Next(&last, date(2024, time.August, 20))
	assert.Equal(t, "INT/INT-KV/2024-25/001", next.String())

	_, err = Parse("INT-KV/2023/045")
	assert.True(t, errors.Is(err, ErrMalformedSequenceState))
}
