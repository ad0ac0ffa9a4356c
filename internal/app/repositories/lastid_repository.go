package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yraj/offerdesk/internal/pkg/logger"
)

// lastIDRow is the fixed key of the singleton row. One scalar, no
// history: losing this value is the single point of failure for ID
// continuity, mitigated only by the unique index on students and the
// highest-by-sequence recovery query.
const lastIDRow = 1

// LastIDRepository persists the single most recently issued student
// identifier. Plain read-modify-write, no transactional guarantee:
// concurrent issuers can observe the same value (the documented race).
type LastIDRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLastIDRepository creates a new LastIDRepository
func NewLastIDRepository(db *pgxpool.Pool) *LastIDRepository {
	return &LastIDRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get returns the last issued identifier, or nil when none has been
// issued yet.
func (r *LastIDRepository) Get(ctx context.Context) (*string, error) {
	sql, args, err := r.sb.Select("student_id").
		From("last_issued_id").
		Where(squirrel.Eq{"id": lastIDRow}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get last ID query: %w", err)
	}

	var studentID string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&studentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Msg("Error reading last issued ID")
		return nil, fmt.Errorf("error getting last issued ID: %w", err)
	}

	return &studentID, nil
}

// Set upserts the last issued identifier. Called exactly once per
// successful student creation, after the student row is written.
func (r *LastIDRepository) Set(ctx context.Context, studentID string) error {
	sql, args, err := r.sb.Insert("last_issued_id").
		Columns("id", "student_id").
		Values(lastIDRow, studentID).
		Suffix("ON CONFLICT (id) DO UPDATE SET student_id = EXCLUDED.student_id, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set last ID query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("studentId", studentID).Msg("Error writing last issued ID")
		return fmt.Errorf("error setting last issued ID: %w", err)
	}
	return nil
}
