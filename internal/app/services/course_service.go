package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yraj/offerdesk/internal/app/models"
	"github.com/yraj/offerdesk/internal/app/repositories"
	"github.com/yraj/offerdesk/internal/pkg/apperrors"
	"github.com/yraj/offerdesk/internal/pkg/normalize"
)

// CourseService defines the interface for course template operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourseByName(ctx context.Context, name string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.CourseName) == "" {
		return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Qualification) == "" {
		return fmt.Errorf("%w: qualification cannot be empty", apperrors.ErrValidationFailed)
	}
	if course.Duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of years", apperrors.ErrValidationFailed)
	}
	if course.TotalAnnualTuitionFee < 0 || course.HostelMessAndOtherFees < 0 ||
		course.SpecialScholarshipFromInstitute < 0 || course.MUPresidentsSpecialScholarship < 0 {
		return fmt.Errorf("%w: fee inputs cannot be negative", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCourse validates, normalizes and stores a course template with
// its derived fee fields recomputed.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	if err := s.validateCourse(course); err != nil {
		return 0, err
	}

	course.CourseName = normalize.TitleCase(course.CourseName)
	course.Qualification = normalize.TitleCase(course.Qualification)
	course.DeriveFees()

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetCourseByID retrieves a course template by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetByID(ctx, id)
}

// GetCourseByName retrieves a course template by its unique name.
// This backs the add-student form's fee snapshot preview.
func (s *courseServiceImpl) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetByName(ctx, normalize.TitleCase(name))
}

// GetAllCourses retrieves all course templates
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// UpdateCourse validates and stores an edited course template,
// recomputing derived fees from the new inputs.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	if err := s.validateCourse(course); err != nil {
		return err
	}

	course.CourseName = normalize.TitleCase(course.CourseName)
	course.Qualification = normalize.TitleCase(course.Qualification)
	course.DeriveFees()

	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse deletes a course template. Existing students keep their
// copied fee fields.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.Delete(ctx, id)
}
