package letter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFields() map[string]string {
	return map[string]string{
		FieldStudentID:             "INT/INT-KV/2024-25/045",
		FieldStudentName:           "Asha Okafor",
		FieldCountryName:           "Nigeria",
		FieldQualification:         "B.Tech",
		FieldCourseOfStudy:         "Computer Science",
		FieldDuration:              "4",
		FieldTuitionFee:            "500000",
		FieldHostelFees:            "100000",
		FieldTotalFees:             "600000",
		FieldInstituteScholarship:  "50000",
		FieldPresidentsScholarship: "20000",
		FieldNetPayable:            "530000",
	}
}

func TestOrdinalSuffix(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		1: "st", 2: "nd", 3: "rd", 4: "th",
		11: "th", 12: "th", 13: "th",
		21: "st", 22: "nd", 23: "rd", 24: "th",
		31: "st",
	}
	for day, want := range cases {
		assert.Equal(t, want, OrdinalSuffix(day), "day %d", day)
	}
}

func TestFormatIssueDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.October, 3, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "3<sup>rd</sup> October, 2024", FormatIssueDate(now))

	teens := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12<sup>th</sup> March, 2024", FormatIssueDate(teens))
}

func TestRender(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.October, 3, 9, 30, 0, 0, time.UTC)

	t.Run("substitutes every occurrence", func(t *testing.T) {
		t.Parallel()
		tpl := "Dear {studentName}, admission of {studentName} to {courseOfStudy}"
		out, err := Render(tpl, sampleFields(), now)
		require.NoError(t, err)
		assert.Equal(t, "Dear Asha Okafor, admission of Asha Okafor to Computer Science", out)
	})

	t.Run("fills date and academic year tokens", func(t *testing.T) {
		t.Parallel()
		tpl := "Date: DD<sup>su </sup>Month, YYYY for session {academicYear}"
		out, err := Render(tpl, sampleFields(), now)
		require.NoError(t, err)
		assert.Equal(t, "Date: 3<sup>rd</sup> October, 2024 for session 2024-25", out)
	})

	t.Run("missing required field fails up front", func(t *testing.T) {
		t.Parallel()
		fields := sampleFields()
		delete(fields, FieldNetPayable)
		_, err := Render("{netAnnualFeePayable}", fields, now)
		assert.ErrorIs(t, err, ErrMissingPlaceholderValue)
		assert.Contains(t, err.Error(), FieldNetPayable)
	})

	t.Run("idempotent on substituted output", func(t *testing.T) {
		t.Parallel()
		tpl := "{studentId} {totalAnnualFees} DD<sup>su </sup>Month, YYYY {academicYear}"
		once, err := Render(tpl, sampleFields(), now)
		require.NoError(t, err)
		require.NotContains(t, once, "{")

		twice, err := Render(once, sampleFields(), now)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("full template leaves no raw tokens", func(t *testing.T) {
		t.Parallel()
		var sb strings.Builder
		for _, name := range requiredFields {
			sb.WriteString("{" + name + "} ")
		}
		sb.WriteString("{academicYear} DD<sup>su </sup>Month, YYYY")
		out, err := Render(sb.String(), sampleFields(), now)
		require.NoError(t, err)
		assert.NotContains(t, out, "{")
		assert.NotContains(t, out, "}")
	})
}
