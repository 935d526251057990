package ports

import (
	"context"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// CompanyRepository persists company accounts. Email is unique.
type CompanyRepository interface {
	// Create stores c and sets its ID. Returns domain.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, c *domain.Company) error
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	// FindByEmail includes the password hash.
	FindByEmail(ctx context.Context, email string) (*domain.Company, error)
	UpdateProfile(ctx context.Context, id string, profile domain.CompanyProfile) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// JobSeekerRepository persists job seeker accounts. Email is unique.
type JobSeekerRepository interface {
	Create(ctx context.Context, js *domain.JobSeeker) error
	FindByID(ctx context.Context, id string) (*domain.JobSeeker, error)
	FindByEmail(ctx context.Context, email string) (*domain.JobSeeker, error)
	UpdateProfile(ctx context.Context, id string, profile domain.JobSeekerProfile) (*domain.JobSeeker, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
