package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           "23505",
		ConstraintName: constraint,
		Message:        fmt.Sprintf("duplicate key value violates unique constraint %q", constraint),
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation",
			err:  uniqueViolation("students_student_id_key"),
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("error creating student: %w", uniqueViolation("students_student_id_key")),
			want: true,
		},
		{
			name: "other postgres error",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "students_course_fk"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection reset"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsDuplicateKeyError(tt.err))
		})
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	t.Parallel()

	// Two writers racing the read-compute-insert cycle collide on the
	// students.student_id unique index; the second insert must surface
	// as a duplicate on exactly that constraint.
	err := fmt.Errorf("error creating student: %w", uniqueViolation("students_student_id_key"))
	assert.True(t, IsDuplicateConstraintError(err, "students_student_id_key"))

	// A unique violation on a different constraint is not the race.
	other := uniqueViolation("courses_course_name_key")
	assert.False(t, IsDuplicateConstraintError(other, "students_student_id_key"))

	assert.False(t, IsDuplicateConstraintError(errors.New("connection reset"), "students_student_id_key"))
}
