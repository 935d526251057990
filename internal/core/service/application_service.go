package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
	"github.com/shiftboard/jobboard-api/internal/pkg/metrics"
	"github.com/shiftboard/jobboard-api/internal/pkg/validation"
)

type applicationService struct {
	applications ports.ApplicationRepository
	jobs         ports.JobRepository
	guard        ports.SubmissionGuard
	validate     *validation.Validator
	log          zerolog.Logger
}

// NewApplicationService returns the application workflow. guard may be nil,
// in which case duplicates are caught by the pre-check and the unique index
// alone.
func NewApplicationService(
	applications ports.ApplicationRepository,
	jobs ports.JobRepository,
	guard ports.SubmissionGuard,
	validate *validation.Validator,
	log zerolog.Logger,
) ports.ApplicationService {
	return &applicationService{
		applications: applications,
		jobs:         jobs,
		guard:        guard,
		validate:     validate,
		log:          log,
	}
}

// Submit records a Pending application. At most one application exists per
// (job, job seeker) pair: the pre-check and the guard reject the common
// duplicates early, and the repository's unique index rejects the rest.
func (s *applicationService) Submit(ctx context.Context, in ports.SubmitApplicationInput) (*domain.Application, error) {
	if in.JobID == "" {
		return nil, domain.NewValidationError("jobID is required")
	}
	applicant := normalizeApplicant(in.Applicant)
	if err := s.validate.Struct(applicant); err != nil {
		return nil, err
	}

	if _, err := s.jobs.FindByID(ctx, in.JobID); err != nil {
		return nil, err
	}

	exists, err := s.applications.Exists(ctx, in.JobID, in.JobSeekerID)
	if err != nil {
		return nil, fmt.Errorf("submit application: %w", err)
	}
	if exists {
		metrics.ApplicationsSubmittedTotal.WithLabelValues("duplicate").Inc()
		return nil, domain.ErrAlreadyApplied
	}

	if s.guard != nil {
		acquired, err := s.guard.Acquire(ctx, in.JobID, in.JobSeekerID)
		switch {
		case err != nil:
			metrics.SubmissionGuardErrorsTotal.Inc()
			s.log.Warn().Err(err).Str("job_id", in.JobID).Msg("submission guard unavailable, relying on unique index")
		case !acquired:
			metrics.ApplicationsSubmittedTotal.WithLabelValues("in_flight").Inc()
			return nil, domain.ErrAlreadyApplied
		default:
			defer s.release(ctx, in.JobID, in.JobSeekerID)
		}
	}

	ts := now()
	app := &domain.Application{
		JobID:         in.JobID,
		JobSeekerID:   in.JobSeekerID,
		Applicant:     applicant,
		Status:        domain.StatusPending,
		StatusHistory: []domain.StatusChange{{Status: domain.StatusPending, ChangedAt: ts}},
		AppliedOn:     ts,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			metrics.ApplicationsSubmittedTotal.WithLabelValues("duplicate").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("submit application: %w", err)
	}

	metrics.ApplicationsSubmittedTotal.WithLabelValues("created").Inc()
	s.log.Info().Str("application_id", app.ID).Str("job_id", app.JobID).Msg("application submitted")
	return app, nil
}

func (s *applicationService) ListMine(ctx context.Context, jobSeekerID string) ([]*domain.ApplicationView, error) {
	apps, err := s.applications.ListByJobSeeker(ctx, jobSeekerID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// ListForJob returns the applicants of a job owned by companyID. An empty
// result is reported as ErrNoApplications.
func (s *applicationService) ListForJob(ctx context.Context, jobID, companyID string) ([]*domain.ApplicationView, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.OwnedBy(companyID) {
		return nil, domain.ErrForbidden
	}

	apps, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	if len(apps) == 0 {
		return nil, domain.ErrNoApplications
	}
	return apps, nil
}

// Get is visible to the applicant and to the company owning the job.
func (s *applicationService) Get(ctx context.Context, applicationID string, caller domain.Identity) (*domain.ApplicationView, error) {
	view, err := s.applications.FindView(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	switch caller.Role {
	case domain.RoleJobSeeker:
		if view.SubmittedBy(caller.ID) {
			return view, nil
		}
	case domain.RoleCompany:
		if view.JobCompanyID != "" && view.JobCompanyID == caller.ID {
			return view, nil
		}
	}
	return nil, domain.ErrForbidden
}

// Withdraw deletes an application. Ownership is checked first, and the delete
// itself is filtered by applicant.
func (s *applicationService) Withdraw(ctx context.Context, applicationID, jobSeekerID string) error {
	app, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if !app.SubmittedBy(jobSeekerID) {
		return domain.ErrForbidden
	}

	if err := s.applications.DeleteOwned(ctx, applicationID, jobSeekerID); err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("withdraw application: %w", err)
	}

	s.log.Info().Str("application_id", applicationID).Msg("application withdrawn")
	return nil
}

// SetStatus assigns any of the four statuses. Only the company owning the
// application's job may do so.
func (s *applicationService) SetStatus(ctx context.Context, applicationID, companyID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	app, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("set status: %w", err)
	}
	if !job.OwnedBy(companyID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.applications.UpdateStatus(ctx, applicationID, status, now())
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("set status: %w", err)
	}

	metrics.ApplicationStatusChangesTotal.WithLabelValues(string(status)).Inc()
	s.log.Info().
		Str("application_id", applicationID).
		Str("from", string(app.Status)).
		Str("to", string(status)).
		Msg("application status changed")
	return updated, nil
}

func (s *applicationService) release(ctx context.Context, jobID, jobSeekerID string) {
	if err := s.guard.Release(context.WithoutCancel(ctx), jobID, jobSeekerID); err != nil {
		s.log.Warn().Err(err).Str("job_id", jobID).Msg("failed to release submission guard")
	}
}
