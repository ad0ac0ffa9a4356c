package models

import (
	"time"

	"github.com/yraj/offerdesk/internal/pkg/fees"
)

// Course is a fee and duration template for one course of study,
// grouped by qualification. Students copy its fee fields at creation
// time; there is no live link afterwards.
type Course struct {
	ID                              int64     `json:"id" db:"id"`
	Qualification                   string    `json:"qualification" db:"qualification" example:"B.Tech"`
	CourseName                      string    `json:"courseName" db:"course_name" example:"Computer Science"`
	Duration                        int       `json:"duration" db:"duration" example:"4"` // years
	TotalAnnualTuitionFee           float64   `json:"totalAnnualTuitionFee" db:"total_annual_tuition_fee"`
	HostelMessAndOtherFees          float64   `json:"hostelMessAndOtherFees" db:"hostel_mess_and_other_fees"`
	TotalAnnualFees                 float64   `json:"totalAnnualFees" db:"total_annual_fees"`
	SpecialScholarshipFromInstitute float64   `json:"specialScholarshipFromInstitute" db:"special_scholarship_from_institute"`
	MUPresidentsSpecialScholarship  float64   `json:"MUPresidentsSpecialScholarship" db:"mu_presidents_special_scholarship"`
	NetAnnualFeePayable             float64   `json:"netAnnualFeePayable" db:"net_annual_fee_payable"`
	CreatedAt                       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt                       time.Time `json:"updatedAt" db:"updated_at"`
}

// DeriveFees recomputes the two derived fee fields from their inputs.
// Called on every create and update so the stored invariants hold:
// total = tuition + hostel, net = total - both scholarships.
func (c *Course) DeriveFees() {
	c.TotalAnnualFees = fees.Total(c.TotalAnnualTuitionFee, c.HostelMessAndOtherFees)
	c.NetAnnualFeePayable = fees.NetPayable(c.TotalAnnualFees, c.SpecialScholarshipFromInstitute, c.MUPresidentsSpecialScholarship)
}

// FeeSnapshot is the set of fields copied from a Course onto a Student
// draft when a course of study is selected.
type FeeSnapshot struct {
	Duration                        int     `json:"duration"`
	TotalAnnualTuitionFee           float64 `json:"totalAnnualTuitionFee"`
	HostelMessAndOtherFees          float64 `json:"hostelMessAndOtherFees"`
	TotalAnnualFees                 float64 `json:"totalAnnualFees"`
	SpecialScholarshipFromInstitute float64 `json:"specialScholarshipFromInstitute"`
	MUPresidentsSpecialScholarship  float64 `json:"MUPresidentsSpecialScholarship"`
	NetAnnualFeePayable             float64 `json:"netAnnualFeePayable"`
}

// Snapshot returns the course's fee fields for copying onto a student
// draft. A one-time copy: later edits to the course never touch
// existing students.
func (c *Course) Snapshot() FeeSnapshot {
	return FeeSnapshot{
		Duration:                        c.Duration,
		TotalAnnualTuitionFee:           c.TotalAnnualTuitionFee,
		HostelMessAndOtherFees:          c.HostelMessAndOtherFees,
		TotalAnnualFees:                 c.TotalAnnualFees,
		SpecialScholarshipFromInstitute: c.SpecialScholarshipFromInstitute,
		MUPresidentsSpecialScholarship:  c.MUPresidentsSpecialScholarship,
		NetAnnualFeePayable:             c.NetAnnualFeePayable,
	}
}
