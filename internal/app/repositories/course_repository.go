package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yraj/offerdesk/internal/app/models"
	"github.com/yraj/offerdesk/internal/pkg/dberrors"
	"github.com/yraj/offerdesk/internal/pkg/logger"
)

// Course error types
var (
	ErrCourseNotFound      = ErrNotFound
	ErrCourseAlreadyExists = errors.New("course with this name already exists")
)

var courseColumns = []string{
	"id", "qualification", "course_name", "duration",
	"total_annual_tuition_fee", "hostel_mess_and_other_fees", "total_annual_fees",
	"special_scholarship_from_institute", "mu_presidents_special_scholarship",
	"net_annual_fee_payable", "created_at", "updated_at",
}

// CourseRepository handles course template database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(
		&c.ID, &c.Qualification, &c.CourseName, &c.Duration,
		&c.TotalAnnualTuitionFee, &c.HostelMessAndOtherFees, &c.TotalAnnualFees,
		&c.SpecialScholarshipFromInstitute, &c.MUPresidentsSpecialScholarship,
		&c.NetAnnualFeePayable, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new course template
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("qualification", "course_name", "duration",
			"total_annual_tuition_fee", "hostel_mess_and_other_fees", "total_annual_fees",
			"special_scholarship_from_institute", "mu_presidents_special_scholarship",
			"net_annual_fee_payable").
		Values(course.Qualification, course.CourseName, course.Duration,
			course.TotalAnnualTuitionFee, course.HostelMessAndOtherFees, course.TotalAnnualFees,
			course.SpecialScholarshipFromInstitute, course.MUPresidentsSpecialScholarship,
			course.NetAnnualFeePayable).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetByName retrieves a course by its unique course name. The student
// form links courses by name, not by ID.
func (r *CourseRepository) GetByName(ctx context.Context, name string) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"course_name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course by name query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseName", name).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by name: %w", err)
	}

	return course, nil
}

// GetAll retrieves all course templates ordered by qualification and
// name, matching the grouping the add-student form shows.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy("qualification ASC", "course_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Update updates an existing course template
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"qualification":                      course.Qualification,
			"course_name":                        course.CourseName,
			"duration":                           course.Duration,
			"total_annual_tuition_fee":           course.TotalAnnualTuitionFee,
			"hostel_mess_and_other_fees":         course.HostelMessAndOtherFees,
			"total_annual_fees":                  course.TotalAnnualFees,
			"special_scholarship_from_institute": course.SpecialScholarshipFromInstitute,
			"mu_presidents_special_scholarship":  course.MUPresidentsSpecialScholarship,
			"net_annual_fee_payable":             course.NetAnnualFeePayable,
			"updated_at":                         squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}
	return nil
}

// Delete deletes a course template by ID. Students referencing the
// course by name are untouched; the snapshot copy has no foreign key.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}
	return nil
}
