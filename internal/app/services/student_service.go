package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yraj/offerdesk/internal/app/models"
	"github.com/yraj/offerdesk/internal/app/repositories"
	"github.com/yraj/offerdesk/internal/pkg/apperrors"
	"github.com/yraj/offerdesk/internal/pkg/studentid"
)

// StudentService defines the interface for student admission record
// operations, including identifier issue.
type StudentService interface {
	NextStudentID(ctx context.Context, now time.Time) (studentid.ID, error)
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetStudentByStudentID(ctx context.Context, sid string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	GetHighestStudent(ctx context.Context) (*models.Student, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	courseRepo  *repositories.CourseRepository
	lastIDRepo  *repositories.LastIDRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
	lastIDRepo *repositories.LastIDRepository,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		lastIDRepo:  lastIDRepo,
		logger:      logger,
	}
}

// NextStudentID reads the last issued identifier and computes its
// successor for now's academic year. Nothing is persisted here; the
// store advances only after the student record is created. A stored
// value that fails to parse surfaces as ErrMalformedSequenceState -
// the sequencer refuses to guess.
//
// Two callers can read the same last value and be handed the same
// identifier; the unique index on students turns the loser's create
// into ErrDuplicateStudentID.
func (s *studentServiceImpl) NextStudentID(ctx context.Context, now time.Time) (studentid.ID, error) {
	last, err := s.lastIDRepo.Get(ctx)
	if err != nil {
		return studentid.ID{}, fmt.Errorf("error reading last issued ID: %w", err)
	}

	if last == nil {
		return studentid.Next(nil, now), nil
	}

	parsed, err := studentid.Parse(*last)
	if err != nil {
		return studentid.ID{}, err
	}
	return studentid.Next(&parsed, now), nil
}

func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	for field, value := range map[string]string{
		"studentId":     student.StudentID,
		"studentName":   student.StudentName,
		"countryName":   student.CountryName,
		"qualification": student.Qualification,
		"courseOfStudy": student.CourseOfStudy,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidationFailed, field)
		}
	}
	if student.Duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of years", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateStudent normalizes, validates and persists a new admission
// record, then advances the last-ID store. The two writes are a
// logical unit but not a transaction: if the last-ID write fails the
// store is left stale and the next issue attempt will recompute an
// already-used identifier, which the unique index rejects.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	if err := s.validateStudent(student); err != nil {
		return 0, err
	}

	student.Normalize()

	// The identifier must parse; a hand-edited malformed ID would
	// poison the last-ID store for every later issue.
	if _, err := studentid.Parse(student.StudentID); err != nil {
		return 0, err
	}

	if err := s.applyCourseSnapshot(ctx, student); err != nil {
		return 0, err
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return 0, err
	}

	if err := s.lastIDRepo.Set(ctx, student.StudentID); err != nil {
		// The student row exists; only the counter is stale. Recovery
		// happens through the duplicate-key rejection on the next issue.
		s.logger.Error().Err(err).Str("studentId", student.StudentID).
			Msg("Student created but last issued ID update failed; store is stale")
	}

	return id, nil
}

// applyCourseSnapshot copies the fee fields from the matching course
// template when the submitted record carries none of its own. A
// submission with previewed values keeps them verbatim; the copy is
// one-time either way and later course edits never touch the student.
func (s *studentServiceImpl) applyCourseSnapshot(ctx context.Context, student *models.Student) error {
	if student.TotalAnnualTuitionFee != 0 || student.HostelMessAndOtherFees != 0 ||
		student.TotalAnnualFees != 0 || student.NetAnnualFeePayable != 0 {
		return nil
	}

	course, err := s.courseRepo.GetByName(ctx, student.CourseOfStudy)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			// Free-form course of study: the record keeps its zeroed
			// fee fields, matching an admission outside the templates.
			return nil
		}
		return fmt.Errorf("error loading course template for snapshot: %w", err)
	}

	student.ApplySnapshot(course.Snapshot())
	return nil
}

// GetStudentByID retrieves a student by record ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid student record ID", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.GetByID(ctx, id)
}

// GetStudentByStudentID retrieves a student by identifier. Mixed-case
// input finds the uppercased canonical record.
func (s *studentServiceImpl) GetStudentByStudentID(ctx context.Context, sid string) (*models.Student, error) {
	if strings.TrimSpace(sid) == "" {
		return nil, fmt.Errorf("%w: student ID cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.GetByStudentID(ctx, strings.ToUpper(sid))
}

// GetAllStudents retrieves all student records
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetHighestStudent retrieves the record with the highest identifier,
// the recovery path when the last-ID store is suspect.
func (s *studentServiceImpl) GetHighestStudent(ctx context.Context) (*models.Student, error) {
	return s.studentRepo.GetHighestBySequence(ctx)
}

// UpdateStudent normalizes, validates and stores an edited record. Fee
// fields are stored as submitted; they diverged from the course
// template at creation time.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, student *models.Student) error {
	if student.ID <= 0 {
		return fmt.Errorf("%w: invalid student record ID", apperrors.ErrValidationFailed)
	}
	if err := s.validateStudent(student); err != nil {
		return err
	}

	student.Normalize()

	if _, err := studentid.Parse(student.StudentID); err != nil {
		return err
	}

	return s.studentRepo.Update(ctx, student)
}

// DeleteStudent deletes a student record
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid student record ID", apperrors.ErrValidationFailed)
	}
	return s.studentRepo.Delete(ctx, id)
}
