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

// Student error types
var (
	ErrStudentNotFound = ErrNotFound
	// ErrDuplicateStudentID is returned on a unique violation of
	// students.student_id. Callers must be able to tell this apart from
	// other failures: it is how the unserialized next-id race surfaces,
	// and the caller reacts by re-requesting a fresh identifier.
	ErrDuplicateStudentID = errors.New("student ID already exists")
)

// studentIDUniqueConstraint is the unique index backing student_id.
const studentIDUniqueConstraint = "students_student_id_key"

var studentColumns = []string{
	"id", "student_id", "student_name", "country_name", "qualification",
	"course_of_study", "duration",
	"total_annual_tuition_fee", "hostel_mess_and_other_fees", "total_annual_fees",
	"special_scholarship_from_institute", "mu_presidents_special_scholarship",
	"net_annual_fee_payable", "created_at", "updated_at",
}

// StudentRepository handles student admission record database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.StudentID, &s.StudentName, &s.CountryName, &s.Qualification,
		&s.CourseOfStudy, &s.Duration,
		&s.TotalAnnualTuitionFee, &s.HostelMessAndOtherFees, &s.TotalAnnualFees,
		&s.SpecialScholarshipFromInstitute, &s.MUPresidentsSpecialScholarship,
		&s.NetAnnualFeePayable, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new student record. A unique violation on
// student_id is surfaced as ErrDuplicateStudentID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "student_name", "country_name", "qualification",
			"course_of_study", "duration",
			"total_annual_tuition_fee", "hostel_mess_and_other_fees", "total_annual_fees",
			"special_scholarship_from_institute", "mu_presidents_special_scholarship",
			"net_annual_fee_payable").
		Values(student.StudentID, student.StudentName, student.CountryName, student.Qualification,
			student.CourseOfStudy, student.Duration,
			student.TotalAnnualTuitionFee, student.HostelMessAndOtherFees, student.TotalAnnualFees,
			student.SpecialScholarshipFromInstitute, student.MUPresidentsSpecialScholarship,
			student.NetAnnualFeePayable).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentIDUniqueConstraint) {
			return 0, ErrDuplicateStudentID
		}
		logger.Error().Err(err).Str("studentId", student.StudentID).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByID retrieves a student by record ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentRecordID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetByStudentID retrieves a student by the uppercased identifier.
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student by student ID query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by student ID: %w", err)
	}

	return student, nil
}

// GetAll retrieves all student records, newest first
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetHighestBySequence retrieves the student whose identifier sorts
// highest. Lexicographic DESC on student_id matches the original
// system's recovery query for when the last-ID store is stale.
func (r *StudentRepository) GetHighestBySequence(ctx context.Context) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("student_id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build highest student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting highest student: %w", err)
	}

	return student, nil
}

// Update updates an existing student record
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"student_id":                         student.StudentID,
			"student_name":                       student.StudentName,
			"country_name":                       student.CountryName,
			"qualification":                      student.Qualification,
			"course_of_study":                    student.CourseOfStudy,
			"duration":                           student.Duration,
			"total_annual_tuition_fee":           student.TotalAnnualTuitionFee,
			"hostel_mess_and_other_fees":         student.HostelMessAndOtherFees,
			"total_annual_fees":                  student.TotalAnnualFees,
			"special_scholarship_from_institute": student.SpecialScholarshipFromInstitute,
			"mu_presidents_special_scholarship":  student.MUPresidentsSpecialScholarship,
			"net_annual_fee_payable":             student.NetAnnualFeePayable,
			"updated_at":                         squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentIDUniqueConstraint) {
			return ErrDuplicateStudentID
		}
		logger.Error().Err(err).Int64("studentRecordID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// Delete deletes a student record by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentRecordID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}
	return nil
}
