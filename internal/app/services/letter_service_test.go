package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yraj/offerdesk/internal/app/models"
	"github.com/yraj/offerdesk/internal/pkg/letter"
)

func TestLetterFields(t *testing.T) {
	t.Parallel()

	student := &models.Student{
		StudentID:                       "INT/INT-KV/2024-25/045",
		StudentName:                     "Asha Okafor",
		CountryName:                     "Nigeria",
		Qualification:                   "B.Tech",
		CourseOfStudy:                   "Computer Science",
		Duration:                        4,
		TotalAnnualTuitionFee:           500000,
		HostelMessAndOtherFees:          100000,
		TotalAnnualFees:                 600000,
		SpecialScholarshipFromInstitute: 50000,
		MUPresidentsSpecialScholarship:  20000,
		NetAnnualFeePayable:             530000,
	}

	fields := letterFields(student)

	assert.Equal(t, "INT/INT-KV/2024-25/045", fields[letter.FieldStudentID])
	assert.Equal(t, "4", fields[letter.FieldDuration])
	assert.Equal(t, "500000", fields[letter.FieldTuitionFee])
	assert.Equal(t, "530000", fields[letter.FieldNetPayable])

	// Every required placeholder has a value, so Render never trips
	// the missing-placeholder check on a complete record.
	_, err := letter.Render("{studentId}", fields, student.CreatedAt)
	assert.NoError(t, err)
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "600000", formatAmount(600000))
	assert.Equal(t, "600000.5", formatAmount(600000.5))
	assert.Equal(t, "-10000", formatAmount(-10000))
	assert.Equal(t, "0", formatAmount(0))
}

func TestLetterFilename(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"INT/INT-KV/2024-25/045":  "45_offer_letter.pdf",
		"INT/INT-KV/2024-25/100":  "100_offer_letter.pdf",
		"INT/INT-KV/2024-25/001":  "1_offer_letter.pdf",
		"INT/INT-KV/2024-25/000":  "0_offer_letter.pdf",
		"INT/INT-KV/2024-25/1000": "0_offer_letter.pdf", // widened serials keep only the last three digits
	}
	for id, want := range cases {
		assert.Equal(t, want, letterFilename(id), "id %q", id)
	}
}
