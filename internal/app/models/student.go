package models

import (
	"time"

	"github.com/yraj/offerdesk/internal/pkg/normalize"
)

// Student is one international admission record. Fee fields are copied
// from the selected course template at creation and edit independently
// afterwards. The course link is by name only; no foreign key is
// enforced, so renaming a course silently orphans its students.
type Student struct {
	ID                              int64     `json:"id" db:"id"`
	StudentID                       string    `json:"studentId" db:"student_id" example:"INT/INT-KV/2024-25/045"`
	StudentName                     string    `json:"studentName" db:"student_name"`
	CountryName                     string    `json:"countryName" db:"country_name"`
	Qualification                   string    `json:"qualification" db:"qualification"`
	CourseOfStudy                   string    `json:"courseOfStudy" db:"course_of_study"`
	Duration                        int       `json:"duration" db:"duration"`
	TotalAnnualTuitionFee           float64   `json:"totalAnnualTuitionFee" db:"total_annual_tuition_fee"`
	HostelMessAndOtherFees          float64   `json:"hostelMessAndOtherFees" db:"hostel_mess_and_other_fees"`
	TotalAnnualFees                 float64   `json:"totalAnnualFees" db:"total_annual_fees"`
	SpecialScholarshipFromInstitute float64   `json:"specialScholarshipFromInstitute" db:"special_scholarship_from_institute"`
	MUPresidentsSpecialScholarship  float64   `json:"MUPresidentsSpecialScholarship" db:"mu_presidents_special_scholarship"`
	NetAnnualFeePayable             float64   `json:"netAnnualFeePayable" db:"net_annual_fee_payable"`
	CreatedAt                       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt                       time.Time `json:"updatedAt" db:"updated_at"`
}

// Normalize applies the canonical casing rules on every creating or
// updating write: title case for the display strings, uppercase for
// the student identifier.
func (s *Student) Normalize() {
	s.StudentID = normalize.StudentID(s.StudentID)
	s.StudentName = normalize.TitleCase(s.StudentName)
	s.CountryName = normalize.TitleCase(s.CountryName)
	s.Qualification = normalize.TitleCase(s.Qualification)
	s.CourseOfStudy = normalize.TitleCase(s.CourseOfStudy)
}

// ApplySnapshot copies a course fee snapshot onto the student.
func (s *Student) ApplySnapshot(snap FeeSnapshot) {
	s.Duration = snap.Duration
	s.TotalAnnualTuitionFee = snap.TotalAnnualTuitionFee
	s.HostelMessAndOtherFees = snap.HostelMessAndOtherFees
	s.TotalAnnualFees = snap.TotalAnnualFees
	s.SpecialScholarshipFromInstitute = snap.SpecialScholarshipFromInstitute
	s.MUPresidentsSpecialScholarship = snap.MUPresidentsSpecialScholarship
	s.NetAnnualFeePayable = snap.NetAnnualFeePayable
}
