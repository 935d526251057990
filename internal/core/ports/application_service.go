package ports

import (
	"context"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// SubmitApplicationInput carries a new application.
type SubmitApplicationInput struct {
	JobID       string
	JobSeekerID string
	Applicant   domain.Applicant
}

type ApplicationService interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (*domain.Application, error)
	ListMine(ctx context.Context, jobSeekerID string) ([]*domain.ApplicationView, error)
	ListForJob(ctx context.Context, jobID, companyID string) ([]*domain.ApplicationView, error)
	Get(ctx context.Context, applicationID string, caller domain.Identity) (*domain.ApplicationView, error)
	Withdraw(ctx context.Context, applicationID, jobSeekerID string) error
	SetStatus(ctx context.Context, applicationID, companyID string, status domain.ApplicationStatus) (*domain.Application, error)
}
