package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yraj/offerdesk/internal/app/models"
	"github.com/yraj/offerdesk/internal/pkg/letter"
)

// LetterService generates the offer-letter PDF for a student record.
type LetterService interface {
	// GenerateForStudent renders and produces the offer letter,
	// returning the PDF bytes and the download filename.
	GenerateForStudent(ctx context.Context, student *models.Student) ([]byte, string, error)
}

type letterServiceImpl struct {
	template string
	producer *letter.Producer
	logger   zerolog.Logger
}

// NewLetterService loads the offer letter template once at startup.
// The template is read-only and never mutated at runtime.
func NewLetterService(templatePath string, producer *letter.Producer, logger zerolog.Logger) (LetterService, error) {
	tpl, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read offer letter template: %w", err)
	}

	return &letterServiceImpl{
		template: string(tpl),
		producer: producer,
		logger:   logger,
	}, nil
}

// GenerateForStudent substitutes the student's fields into the
// template and prints it to PDF. Any failure returns no document.
func (s *letterServiceImpl) GenerateForStudent(ctx context.Context, student *models.Student) ([]byte, string, error) {
	now := time.Now()

	html, err := letter.Render(s.template, letterFields(student), now)
	if err != nil {
		return nil, "", err
	}

	started := time.Now()
	pdf, err := s.producer.Produce(ctx, html)
	if err != nil {
		s.logger.Error().Err(err).Str("studentId", student.StudentID).Msg("Offer letter production failed")
		return nil, "", err
	}

	s.logger.Info().
		Str("studentId", student.StudentID).
		Dur("took", time.Since(started)).
		Int("bytes", len(pdf)).
		Msg("Offer letter generated")

	return pdf, letterFilename(student.StudentID), nil
}

// letterFields flattens a student record into the template's field
// map. All values are display strings; fee amounts render without
// trailing zeros.
func letterFields(student *models.Student) map[string]string {
	return map[string]string{
		letter.FieldStudentID:             student.StudentID,
		letter.FieldStudentName:           student.StudentName,
		letter.FieldCountryName:           student.CountryName,
		letter.FieldQualification:         student.Qualification,
		letter.FieldCourseOfStudy:         student.CourseOfStudy,
		letter.FieldDuration:              strconv.Itoa(student.Duration),
		letter.FieldTuitionFee:            formatAmount(student.TotalAnnualTuitionFee),
		letter.FieldHostelFees:            formatAmount(student.HostelMessAndOtherFees),
		letter.FieldTotalFees:             formatAmount(student.TotalAnnualFees),
		letter.FieldInstituteScholarship:  formatAmount(student.SpecialScholarshipFromInstitute),
		letter.FieldPresidentsScholarship: formatAmount(student.MUPresidentsSpecialScholarship),
		letter.FieldNetPayable:            formatAmount(student.NetAnnualFeePayable),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// letterFilename derives the download name from the last three
// characters of the identifier with leading zeros stripped, e.g.
// INT/INT-KV/2024-25/045 downloads as 45_offer_letter.pdf. Serials
// widened past 999 lose their leading digits here: .../1000 ends in
// "000" and collapses to 0_offer_letter.pdf, a consequence of the
// uncapped serial carried over from the source system.
func letterFilename(studentID string) string {
	serial := studentID
	if len(serial) > 3 {
		serial = serial[len(serial)-3:]
	}
	serial = strings.TrimLeft(serial, "0")
	if serial == "" {
		serial = "0"
	}
	return serial + "_offer_letter.pdf"
}
