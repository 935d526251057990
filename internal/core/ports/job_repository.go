package ports

import (
	"context"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// JobRepository persists job postings.
type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// FindListing returns the job with its company expanded.
	FindListing(ctx context.Context, id string) (*domain.JobListing, error)
	// List returns listings newest first.
	List(ctx context.Context, filter domain.JobFilter) ([]*domain.JobListing, error)
	Update(ctx context.Context, id string, details domain.JobDetails, slug string) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
	IDsByCompany(ctx context.Context, companyID string) ([]string, error)
	DeleteByCompany(ctx context.Context, companyID string) error
}
