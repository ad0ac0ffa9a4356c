package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is the shared not-found sentinel for all repositories.
var ErrNotFound = errors.New("record not found")

// Repositories bundles all repository instances.
type Repositories struct {
	CourseRepository       *CourseRepository
	StudentRepository      *StudentRepository
	LastIDRepository       *LastIDRepository
	UserRepository         *UserRepository
	RefreshTokenRepository *RefreshTokenRepository
}

// NewRepositories creates all repositories sharing one pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:       NewCourseRepository(db),
		StudentRepository:      NewStudentRepository(db),
		LastIDRepository:       NewLastIDRepository(db),
		UserRepository:         NewUserRepository(db),
		RefreshTokenRepository: NewRefreshTokenRepository(db),
	}
}
