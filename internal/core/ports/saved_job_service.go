package ports

import (
	"context"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

type SavedJobService interface {
	// Save is idempotent; created is false when the pair already existed.
	Save(ctx context.Context, jobSeekerID, jobID string) (saved *domain.SavedJob, created bool, err error)
	Unsave(ctx context.Context, jobSeekerID, jobID string) error
	List(ctx context.Context, jobSeekerID string) ([]*domain.SavedJobView, error)
}
