package ports

import (
	"context"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// AccountService covers self-service profile management.
type AccountService interface {
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id string, patch domain.CompanyPatch) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id string) error

	GetJobSeeker(ctx context.Context, id string) (*domain.JobSeeker, error)
	UpdateJobSeeker(ctx context.Context, id string, patch domain.JobSeekerPatch) (*domain.JobSeeker, error)
	DeleteJobSeeker(ctx context.Context, id string) error

	// AccountExists reports whether the identity still resolves to an account.
	AccountExists(ctx context.Context, id domain.Identity) (bool, error)
}
