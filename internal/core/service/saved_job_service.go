package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
	"github.com/shiftboard/jobboard-api/internal/pkg/metrics"
)

type savedJobService struct {
	saved ports.SavedJobRepository
	jobs  ports.JobRepository
	log   zerolog.Logger
}

// NewSavedJobService returns the bookmark use cases.
func NewSavedJobService(saved ports.SavedJobRepository, jobs ports.JobRepository, log zerolog.Logger) ports.SavedJobService {
	return &savedJobService{saved: saved, jobs: jobs, log: log}
}

// Save bookmarks a job. Saving an already saved job, including losing a
// concurrent race for the same pair, returns the existing entry.
func (s *savedJobService) Save(ctx context.Context, jobSeekerID, jobID string) (*domain.SavedJob, bool, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, false, err
	}

	existing, err := s.saved.Find(ctx, jobSeekerID, jobID)
	switch {
	case err == nil:
		metrics.SavedJobsTotal.WithLabelValues("existing").Inc()
		return existing, false, nil
	case !errors.Is(err, domain.ErrSavedJobNotFound):
		return nil, false, fmt.Errorf("save job: %w", err)
	}

	entry := &domain.SavedJob{JobSeekerID: jobSeekerID, JobID: jobID, SavedOn: now()}
	if err := s.saved.Create(ctx, entry); err != nil {
		if !errors.Is(err, domain.ErrAlreadySaved) {
			return nil, false, fmt.Errorf("save job: %w", err)
		}
		existing, err := s.saved.Find(ctx, jobSeekerID, jobID)
		if err != nil {
			return nil, false, fmt.Errorf("save job: %w", err)
		}
		metrics.SavedJobsTotal.WithLabelValues("existing").Inc()
		return existing, false, nil
	}

	metrics.SavedJobsTotal.WithLabelValues("created").Inc()
	s.log.Debug().Str("jobseeker_id", jobSeekerID).Str("job_id", jobID).Msg("job saved")
	return entry, true, nil
}

func (s *savedJobService) Unsave(ctx context.Context, jobSeekerID, jobID string) error {
	return s.saved.Delete(ctx, jobSeekerID, jobID)
}

func (s *savedJobService) List(ctx context.Context, jobSeekerID string) ([]*domain.SavedJobView, error) {
	saved, err := s.saved.ListByJobSeeker(ctx, jobSeekerID)
	if err != nil {
		return nil, fmt.Errorf("list saved jobs: %w", err)
	}
	return saved, nil
}
