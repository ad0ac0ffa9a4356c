package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yraj/offerdesk/internal/app/models"
	appRepos "github.com/yraj/offerdesk/internal/app/repositories"
	"github.com/yraj/offerdesk/internal/pkg/auth"
)

// CreateDefaultData creates the default admin user and a starter set of
// course fee templates if they don't exist. Safe to run on every boot.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin user, courses)...")
	var finalErr error

	// --- Default Admin User --- //
	exists, err := userRepo.ExistsByEmail(ctx, "admin@offerdesk.edu")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := auth.HashPassword("Admin123!")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Name:     "System Administrator",
				Email:    "admin@offerdesk.edu",
				Password: hashedPassword,
				Role:     appModels.RoleAdmin,
			}

			adminID, err := userRepo.Create(ctx, admin)
			if err != nil {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("adminID", adminID).Msg("Default admin user created successfully")
			}
		}
	} else {
		lgr.Info().Msg("Admin user already exists, skipping creation")
	}

	// --- Starter Course Templates --- //
	defaultCourses := []*appModels.Course{
		{
			Qualification:                   "B.Tech",
			CourseName:                      "Computer Science And Engineering",
			Duration:                        4,
			TotalAnnualTuitionFee:           500000,
			HostelMessAndOtherFees:          100000,
			SpecialScholarshipFromInstitute: 50000,
			MUPresidentsSpecialScholarship:  20000,
		},
		{
			Qualification:                   "MBA",
			CourseName:                      "Business Administration",
			Duration:                        2,
			TotalAnnualTuitionFee:           400000,
			HostelMessAndOtherFees:          100000,
			SpecialScholarshipFromInstitute: 40000,
			MUPresidentsSpecialScholarship:  0,
		},
	}

	for _, course := range defaultCourses {
		course.DeriveFees()
		if _, err := courseRepo.Create(ctx, course); err != nil &&
			!errors.Is(err, appRepos.ErrCourseAlreadyExists) {
			lgr.Error().Err(err).Str("course", course.CourseName).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
