package ports

import (
	"context"
	"time"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// ApplicationRepository persists applications. The (job, job seeker) pair is
// unique; Create returns domain.ErrAlreadyApplied when it is violated.
type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.Application) error
	Exists(ctx context.Context, jobID, jobSeekerID string) (bool, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	// FindView expands the job (title, owning company id) and the applicant name.
	FindView(ctx context.Context, id string) (*domain.ApplicationView, error)
	// ListByJobSeeker expands the job title and company, newest first.
	ListByJobSeeker(ctx context.Context, jobSeekerID string) ([]*domain.ApplicationView, error)
	// ListByJob expands the applicant name, most recently applied first.
	ListByJob(ctx context.Context, jobID string) ([]*domain.ApplicationView, error)
	// UpdateStatus sets the status and appends it to the history in one write.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, at time.Time) (*domain.Application, error)
	// DeleteOwned removes the application only if jobSeekerID submitted it.
	DeleteOwned(ctx context.Context, id, jobSeekerID string) error
	DeleteByJobs(ctx context.Context, jobIDs []string) error
	DeleteByJobSeeker(ctx context.Context, jobSeekerID string) error
}

// SubmissionGuard marks a (job, job seeker) submission as in flight. It is
// advisory; the repository's unique index remains authoritative.
type SubmissionGuard interface {
	Acquire(ctx context.Context, jobID, jobSeekerID string) (bool, error)
	Release(ctx context.Context, jobID, jobSeekerID string) error
}
