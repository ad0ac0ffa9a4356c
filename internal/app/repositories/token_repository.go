package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yraj/offerdesk/internal/app/models"
)

// ErrRefreshTokenNotFound is returned when no usable refresh token
// matches.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository tracks opaque refresh tokens per staff user.
type RefreshTokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository
func NewRefreshTokenRepository(db *pgxpool.Pool) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Store saves a refresh token with its expiry.
func (r *RefreshTokenRepository) Store(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	sql, args, err := r.sb.Insert("refresh_tokens").
		Columns("user_id", "token", "expires_at").
		Values(userID, token, expiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build store refresh token query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}
	return nil
}

// Find returns the token row if it exists, is unexpired and not
// revoked.
func (r *RefreshTokenRepository) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	sql, args, err := r.sb.Select("id", "user_id", "token", "expires_at", "revoked", "created_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token": token, "revoked": false}).
		Where(squirrel.Expr("expires_at > NOW()")).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build find refresh token query: %w", err)
	}

	rt := &models.RefreshToken{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&rt.ID, &rt.UserID, &rt.Token, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, fmt.Errorf("error finding refresh token: %w", err)
	}

	return rt, nil
}

// Revoke marks a token unusable. Used on rotation so each refresh
// token is exchanged at most once.
func (r *RefreshTokenRepository) Revoke(ctx context.Context, token string) error {
	sql, args, err := r.sb.Update("refresh_tokens").
		Set("revoked", true).
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build revoke refresh token query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}
