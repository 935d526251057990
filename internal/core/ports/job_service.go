package ports

import (
	"context"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

type JobService interface {
	Create(ctx context.Context, companyID string, details domain.JobDetails) (*domain.Job, error)
	Update(ctx context.Context, jobID, companyID string, patch domain.JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, jobID, companyID string) error
	List(ctx context.Context, filter domain.JobFilter) ([]*domain.JobListing, error)
	Get(ctx context.Context, jobID string) (*domain.JobListing, error)
}
