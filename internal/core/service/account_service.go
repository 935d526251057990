package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
	"github.com/shiftboard/jobboard-api/internal/pkg/metrics"
	"github.com/shiftboard/jobboard-api/internal/pkg/validation"
)

type accountService struct {
	companies    ports.CompanyRepository
	seekers      ports.JobSeekerRepository
	jobs         ports.JobRepository
	applications ports.ApplicationRepository
	saved        ports.SavedJobRepository
	validate     *validation.Validator
	log          zerolog.Logger
}

// NewAccountService returns the self-service profile use cases. Account
// deletion cascades through the job, application and saved job repositories.
func NewAccountService(
	companies ports.CompanyRepository,
	seekers ports.JobSeekerRepository,
	jobs ports.JobRepository,
	applications ports.ApplicationRepository,
	saved ports.SavedJobRepository,
	validate *validation.Validator,
	log zerolog.Logger,
) ports.AccountService {
	return &accountService{
		companies:    companies,
		seekers:      seekers,
		jobs:         jobs,
		applications: applications,
		saved:        saved,
		validate:     validate,
		log:          log,
	}
}

func (s *accountService) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// UpdateCompany merges the patch into the stored profile and validates the
// result with the signup rules.
func (s *accountService) UpdateCompany(ctx context.Context, id string, patch domain.CompanyPatch) (*domain.Company, error) {
	current, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := normalizeCompanyProfile(patch.Apply(current.CompanyProfile))
	if err := s.validate.Struct(profile); err != nil {
		return nil, err
	}

	updated, err := s.companies.UpdateProfile(ctx, id, profile)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return updated, nil
}

// DeleteCompany removes the company's jobs and everything referencing them
// before the account itself, so a failed cascade can be retried.
func (s *accountService) DeleteCompany(ctx context.Context, id string) error {
	if _, err := s.companies.FindByID(ctx, id); err != nil {
		return err
	}

	jobIDs, err := s.jobs.IDsByCompany(ctx, id)
	if err != nil {
		return fmt.Errorf("delete company: list jobs: %w", err)
	}
	if len(jobIDs) > 0 {
		if err := s.applications.DeleteByJobs(ctx, jobIDs); err != nil {
			return fmt.Errorf("delete company: applications: %w", err)
		}
		if err := s.saved.DeleteByJobs(ctx, jobIDs); err != nil {
			return fmt.Errorf("delete company: saved jobs: %w", err)
		}
		if err := s.jobs.DeleteByCompany(ctx, id); err != nil {
			return fmt.Errorf("delete company: jobs: %w", err)
		}
	}
	if err := s.companies.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}

	metrics.AccountsDeletedTotal.WithLabelValues(string(domain.RoleCompany)).Inc()
	s.log.Info().Str("company_id", id).Int("jobs", len(jobIDs)).Msg("company deleted")
	return nil
}

func (s *accountService) GetJobSeeker(ctx context.Context, id string) (*domain.JobSeeker, error) {
	return s.seekers.FindByID(ctx, id)
}

func (s *accountService) UpdateJobSeeker(ctx context.Context, id string, patch domain.JobSeekerPatch) (*domain.JobSeeker, error) {
	current, err := s.seekers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := normalizeJobSeekerProfile(patch.Apply(current.JobSeekerProfile))
	if err := s.validate.Struct(profile); err != nil {
		return nil, err
	}

	updated, err := s.seekers.UpdateProfile(ctx, id, profile)
	if err != nil {
		return nil, fmt.Errorf("update job seeker: %w", err)
	}
	return updated, nil
}

func (s *accountService) DeleteJobSeeker(ctx context.Context, id string) error {
	if _, err := s.seekers.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.applications.DeleteByJobSeeker(ctx, id); err != nil {
		return fmt.Errorf("delete job seeker: applications: %w", err)
	}
	if err := s.saved.DeleteByJobSeeker(ctx, id); err != nil {
		return fmt.Errorf("delete job seeker: saved jobs: %w", err)
	}
	if err := s.seekers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job seeker: %w", err)
	}

	metrics.AccountsDeletedTotal.WithLabelValues(string(domain.RoleJobSeeker)).Inc()
	s.log.Info().Str("jobseeker_id", id).Msg("job seeker deleted")
	return nil
}

func (s *accountService) AccountExists(ctx context.Context, id domain.Identity) (bool, error) {
	switch id.Role {
	case domain.RoleCompany:
		return s.companies.Exists(ctx, id.ID)
	case domain.RoleJobSeeker:
		return s.seekers.Exists(ctx, id.ID)
	}
	return false, nil
}

// now is overridden in tests.
var now = func() time.Time { return time.Now().UTC() }
