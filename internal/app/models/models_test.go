package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentNormalize(t *testing.T) {
	t.Parallel()

	s := Student{
		StudentID:     "int/int-kv/2024-25/045",
		StudentName:   "asha okafor",
		CountryName:   "nigeria",
		Qualification: "b.tech",
		CourseOfStudy: "computer science",
	}
	s.Normalize()

	assert.Equal(t, "INT/INT-KV/2024-25/045", s.StudentID)
	assert.Equal(t, "Asha Okafor", s.StudentName)
	assert.Equal(t, "Nigeria", s.CountryName)
	assert.Equal(t, "B.Tech", s.Qualification)
	assert.Equal(t, "Computer Science", s.CourseOfStudy)
}

func TestCourseDeriveFees(t *testing.T) {
	t.Parallel()

	c := Course{
		TotalAnnualTuitionFee:           500000,
		HostelMessAndOtherFees:          100000,
		SpecialScholarshipFromInstitute: 50000,
		MUPresidentsSpecialScholarship:  20000,
	}
	c.DeriveFees()

	assert.Equal(t, 600000.0, c.TotalAnnualFees)
	assert.Equal(t, 530000.0, c.NetAnnualFeePayable)
}

func TestApplySnapshotCopiesAllFeeFields(t *testing.T) {
	t.Parallel()

	c := Course{
		Duration:                        4,
		TotalAnnualTuitionFee:           500000,
		HostelMessAndOtherFees:          100000,
		SpecialScholarshipFromInstitute: 50000,
		MUPresidentsSpecialScholarship:  20000,
	}
	c.DeriveFees()

	var s Student
	s.ApplySnapshot(c.Snapshot())

	assert.Equal(t, 4, s.Duration)
	assert.Equal(t, 600000.0, s.TotalAnnualFees)
	assert.Equal(t, 530000.0, s.NetAnnualFeePayable)

	// One-time copy: later course edits never reach the student.
	c.TotalAnnualTuitionFee = 999999
	c.DeriveFees()
	assert.Equal(t, 600000.0, s.TotalAnnualFees)
}
