package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
	"github.com/shiftboard/jobboard-api/internal/pkg/metrics"
	"github.com/shiftboard/jobboard-api/internal/pkg/validation"
)

type jobService struct {
	jobs         ports.JobRepository
	companies    ports.CompanyRepository
	applications ports.ApplicationRepository
	saved        ports.SavedJobRepository
	validate     *validation.Validator
	log          zerolog.Logger
}

// NewJobService returns the job catalog use cases.
func NewJobService(
	jobs ports.JobRepository,
	companies ports.CompanyRepository,
	applications ports.ApplicationRepository,
	saved ports.SavedJobRepository,
	validate *validation.Validator,
	log zerolog.Logger,
) ports.JobService {
	return &jobService{
		jobs:         jobs,
		companies:    companies,
		applications: applications,
		saved:        saved,
		validate:     validate,
		log:          log,
	}
}

func (s *jobService) Create(ctx context.Context, companyID string, details domain.JobDetails) (*domain.Job, error) {
	details = normalizeJobDetails(details)
	if err := s.validate.Struct(details); err != nil {
		return nil, err
	}

	exists, err := s.companies.Exists(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	if !exists {
		return nil, domain.ErrCompanyNotFound
	}

	job := &domain.Job{
		CompanyID:  companyID,
		JobDetails: details,
		Slug:       slug.Make(details.Title),
		PostedOn:   now(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	metrics.JobsPostedTotal.WithLabelValues(strconv.FormatBool(job.IsUrgent)).Inc()
	s.log.Info().Str("job_id", job.ID).Str("company_id", companyID).Msg("job posted")
	return job, nil
}

// Update applies the non-empty patch fields. Only the owning company may
// update a job.
func (s *jobService) Update(ctx context.Context, jobID, companyID string, patch domain.JobPatch) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, jobID, companyID)
	if err != nil {
		return nil, err
	}

	details := normalizeJobDetails(patch.Apply(job.JobDetails))
	if err := s.validate.Struct(details); err != nil {
		return nil, err
	}

	updated, err := s.jobs.Update(ctx, jobID, details, slug.Make(details.Title))
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return updated, nil
}

// Delete removes the job with its applications and saved entries. Only the
// owning company may delete a job.
func (s *jobService) Delete(ctx context.Context, jobID, companyID string) error {
	if _, err := s.ownedJob(ctx, jobID, companyID); err != nil {
		return err
	}

	ids := []string{jobID}
	if err := s.applications.DeleteByJobs(ctx, ids); err != nil {
		return fmt.Errorf("delete job: applications: %w", err)
	}
	if err := s.saved.DeleteByJobs(ctx, ids); err != nil {
		return fmt.Errorf("delete job: saved jobs: %w", err)
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	s.log.Info().Str("job_id", jobID).Str("company_id", companyID).Msg("job deleted")
	return nil
}

func (s *jobService) List(ctx context.Context, filter domain.JobFilter) ([]*domain.JobListing, error) {
	jobs, err := s.jobs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) Get(ctx context.Context, jobID string) (*domain.JobListing, error) {
	return s.jobs.FindListing(ctx, jobID)
}

func (s *jobService) ownedJob(ctx context.Context, jobID, companyID string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.OwnedBy(companyID) {
		return nil, domain.ErrForbidden
	}
	return job, nil
}
