package ports

import (
	"context"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// SavedJobRepository persists bookmarks. The (job seeker, job) pair is unique;
// Create returns domain.ErrAlreadySaved when it is violated.
type SavedJobRepository interface {
	Create(ctx context.Context, s *domain.SavedJob) error
	Find(ctx context.Context, jobSeekerID, jobID string) (*domain.SavedJob, error)
	Delete(ctx context.Context, jobSeekerID, jobID string) error
	// ListByJobSeeker expands each job and its company name, newest first.
	ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]*domain.SavedJobView, error)
	DeleteByJobs(ctx context.Context, jobIDs []string) error
	DeleteByJobSeeker(ctx context.Context, jobSeekerID string) error
}
