package letter

import (
	"errors"
	"fmt"
)

// Renderer and producer errors.
var (
	// ErrMissingPlaceholderValue is returned when the field map lacks a
	// value for a required template placeholder. The render fails up
	// front instead of leaving raw {tokens} in the letter.
	ErrMissingPlaceholderValue = errors.New("missing value for template placeholder")
	// ErrGeneration is returned when the headless rendering engine
	// fails to launch or to produce a document. No partial PDF is ever
	// returned.
	ErrGeneration = errors.New("offer letter generation failed")
	// ErrTimeout is returned when document production exceeds the
	// configured deadline.
	ErrTimeout = errors.New("offer letter generation timed out")
)

// Placeholder field names substituted into the offer letter template.
// Every name appears in the template wrapped in braces, e.g.
// {studentName}. The set is fixed; the template is never extended at
// runtime.
const (
	FieldStudentID             = "studentId"
	FieldStudentName           = "studentName"
	FieldCountryName           = "countryName"
	FieldQualification         = "qualification"
	FieldCourseOfStudy         = "courseOfStudy"
	FieldDuration              = "duration"
	FieldTuitionFee            = "totalAnnualTuitionFee"
	FieldHostelFees            = "hostelMessAndOtherFees"
	FieldTotalFees             = "totalAnnualFees"
	FieldInstituteScholarship  = "specialScholarshipFromInstitute"
	FieldPresidentsScholarship = "MUPresidentsSpecialScholarship"
	FieldNetPayable            = "netAnnualFeePayable"
)

// dateToken is the literal placeholder the template carries for the
// issue date; it is replaced with the formatted current date.
const dateToken = "DD<sup>su </sup>Month, YYYY"

// academicYearField is computed from the render time, never supplied
// by the caller.
const academicYearField = "academicYear"

// requiredFields enumerates every caller-supplied placeholder. All are
// required: an offer letter with a blank fee cell or name is invalid.
var requiredFields = []string{
	FieldStudentID,
	FieldStudentName,
	FieldCountryName,
	FieldQualification,
	FieldCourseOfStudy,
	FieldDuration,
	FieldTuitionFee,
	FieldHostelFees,
	FieldTotalFees,
	FieldInstituteScholarship,
	FieldPresidentsScholarship,
	FieldNetPayable,
}

// validateFields checks that every required placeholder has a value.
func validateFields(fields map[string]string) error {
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingPlaceholderValue, name)
		}
	}
	return nil
}
