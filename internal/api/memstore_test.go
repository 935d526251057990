package api

import (
	"context"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// memStore backs the router tests with the same uniqueness rules the mongo
// indexes enforce.
type memStore struct {
	mu        sync.Mutex
	seq       int
	companies map[string]domain.Company
	seekers   map[string]domain.JobSeeker
	jobs      map[string]domain.Job
	apps      map[string]domain.Application
	saved     map[string]domain.SavedJob
}

func newMemStore() *memStore {
	return &memStore{
		companies: map[string]domain.Company{},
		seekers:   map[string]domain.JobSeeker{},
		jobs:      map[string]domain.Job{},
		apps:      map[string]domain.Application{},
		saved:     map[string]domain.SavedJob{},
	}
}

func (m *memStore) id() string {
	m.seq++
	return fmt.Sprintf("%024x", m.seq)
}

// checkID mirrors the ObjectID parsing done by the mongo repositories.
func checkID(id string) error {
	if b, err := hex.DecodeString(id); err != nil || len(b) != 12 {
		return domain.ErrInvalidID
	}
	return nil
}

func (m *memStore) companyRef(id string) *domain.AccountRef {
	c, ok := m.companies[id]
	if !ok {
		return nil
	}
	return &domain.AccountRef{ID: c.ID, Name: c.Name}
}

// --- companies ---

type memCompanies struct{ *memStore }

func (r memCompanies) Create(_ context.Context, c *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.companies {
		if existing.Email == c.Email {
			return domain.ErrEmailTaken
		}
	}
	c.ID = r.id()
	r.companies[c.ID] = *c
	return nil
}

func (r memCompanies) FindByID(_ context.Context, id string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	c.PasswordHash = ""
	return &c, nil
}

func (r memCompanies) FindByEmail(_ context.Context, email string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, domain.ErrCompanyNotFound
}

func (r memCompanies) UpdateProfile(_ context.Context, id string, p domain.CompanyProfile) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	c.CompanyProfile = p
	r.companies[id] = c
	return &c, nil
}

func (r memCompanies) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[id]; !ok {
		return domain.ErrCompanyNotFound
	}
	delete(r.companies, id)
	return nil
}

func (r memCompanies) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.companies[id]
	return ok, nil
}

// --- job seekers ---

type memSeekers struct{ *memStore }

func (r memSeekers) Create(_ context.Context, js *domain.JobSeeker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.seekers {
		if existing.Email == js.Email {
			return domain.ErrEmailTaken
		}
	}
	js.ID = r.id()
	r.seekers[js.ID] = *js
	return nil
}

func (r memSeekers) FindByID(_ context.Context, id string) (*domain.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	js, ok := r.seekers[id]
	if !ok {
		return nil, domain.ErrJobSeekerNotFound
	}
	js.PasswordHash = ""
	return &js, nil
}

func (r memSeekers) FindByEmail(_ context.Context, email string) (*domain.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, js := range r.seekers {
		if js.Email == email {
			return &js, nil
		}
	}
	return nil, domain.ErrJobSeekerNotFound
}

func (r memSeekers) UpdateProfile(_ context.Context, id string, p domain.JobSeekerProfile) (*domain.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	js, ok := r.seekers[id]
	if !ok {
		return nil, domain.ErrJobSeekerNotFound
	}
	js.JobSeekerProfile = p
	r.seekers[id] = js
	return &js, nil
}

func (r memSeekers) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seekers[id]; !ok {
		return domain.ErrJobSeekerNotFound
	}
	delete(r.seekers, id)
	return nil
}

func (r memSeekers) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.seekers[id]
	return ok, nil
}

// --- jobs ---

type memJobs struct{ *memStore }

func (r memJobs) Create(_ context.Context, j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = r.id()
	r.jobs[j.ID] = *j
	return nil
}

func (r memJobs) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return &j, nil
}

func (r memJobs) FindListing(_ context.Context, id string) (*domain.JobListing, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return &domain.JobListing{Job: &j, Company: r.companyRef(j.CompanyID)}, nil
}

func (r memJobs) List(_ context.Context, f domain.JobFilter) ([]*domain.JobListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.JobListing{}
	for _, j := range r.jobs {
		if (f.CompanyID != "" && j.CompanyID != f.CompanyID) || (f.UrgentOnly && !j.IsUrgent) {
			continue
		}
		j := j
		out = append(out, &domain.JobListing{Job: &j, Company: r.companyRef(j.CompanyID)})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].PostedOn.After(out[b].PostedOn) })
	return out, nil
}

func (r memJobs) Update(_ context.Context, id string, d domain.JobDetails, slug string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	j.JobDetails, j.Slug = d, slug
	r.jobs[id] = j
	return &j, nil
}

func (r memJobs) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r memJobs) IDsByCompany(_ context.Context, companyID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id, j := range r.jobs {
		if j.CompanyID == companyID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r memJobs) DeleteByCompany(_ context.Context, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, j := range r.jobs {
		if j.CompanyID == companyID {
			delete(r.jobs, id)
		}
	}
	return nil
}

// --- applications ---

type memApplications struct{ *memStore }

func (r memApplications) Create(_ context.Context, a *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.apps {
		if existing.JobID == a.JobID && existing.JobSeekerID == a.JobSeekerID {
			return domain.ErrAlreadyApplied
		}
	}
	a.ID = r.id()
	r.apps[a.ID] = *a
	return nil
}

func (r memApplications) Exists(_ context.Context, jobID, jobSeekerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == jobID && a.JobSeekerID == jobSeekerID {
			return true, nil
		}
	}
	return false, nil
}

func (r memApplications) FindByID(_ context.Context, id string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return &a, nil
}

func (r memApplications) view(a domain.Application) *domain.ApplicationView {
	v := &domain.ApplicationView{Application: &a}
	if j, ok := r.jobs[a.JobID]; ok {
		v.Job = &domain.JobRef{ID: j.ID, Title: j.Title, Company: r.companyRef(j.CompanyID)}
		v.JobCompanyID = j.CompanyID
	}
	if js, ok := r.seekers[a.JobSeekerID]; ok {
		v.JobSeeker = &domain.AccountRef{ID: js.ID, Name: js.Name}
	}
	return v
}

func (r memApplications) FindView(_ context.Context, id string) (*domain.ApplicationView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return r.view(a), nil
}

func (r memApplications) list(keep func(domain.Application) bool) []*domain.ApplicationView {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.ApplicationView{}
	for _, a := range r.apps {
		if keep(a) {
			out = append(out, r.view(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedOn.After(out[j].AppliedOn) })
	return out
}

func (r memApplications) ListByJobSeeker(_ context.Context, jobSeekerID string) ([]*domain.ApplicationView, error) {
	return r.list(func(a domain.Application) bool { return a.JobSeekerID == jobSeekerID }), nil
}

func (r memApplications) ListByJob(_ context.Context, jobID string) ([]*domain.ApplicationView, error) {
	return r.list(func(a domain.Application) bool { return a.JobID == jobID }), nil
}

func (r memApplications) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus, at time.Time) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	a.Status, a.UpdatedAt = status, at
	a.StatusHistory = append(append([]domain.StatusChange(nil), a.StatusHistory...), domain.StatusChange{Status: status, ChangedAt: at})
	r.apps[id] = a
	return &a, nil
}

func (r memApplications) DeleteOwned(_ context.Context, id, jobSeekerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok || a.JobSeekerID != jobSeekerID {
		return domain.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r memApplications) DeleteByJobs(_ context.Context, jobIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, jobID := range jobIDs {
		for id, a := range r.apps {
			if a.JobID == jobID {
				delete(r.apps, id)
			}
		}
	}
	return nil
}

func (r memApplications) DeleteByJobSeeker(_ context.Context, jobSeekerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.apps {
		if a.JobSeekerID == jobSeekerID {
			delete(r.apps, id)
		}
	}
	return nil
}

// --- saved jobs ---

type memSaved struct{ *memStore }

func (r memSaved) Create(_ context.Context, s *domain.SavedJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.saved {
		if existing.JobSeekerID == s.JobSeekerID && existing.JobID == s.JobID {
			return domain.ErrAlreadySaved
		}
	}
	s.ID = r.id()
	r.saved[s.ID] = *s
	return nil
}

func (r memSaved) Find(_ context.Context, jobSeekerID, jobID string) (*domain.SavedJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.saved {
		if s.JobSeekerID == jobSeekerID && s.JobID == jobID {
			return &s, nil
		}
	}
	return nil, domain.ErrSavedJobNotFound
}

func (r memSaved) Delete(_ context.Context, jobSeekerID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.saved {
		if s.JobSeekerID == jobSeekerID && s.JobID == jobID {
			delete(r.saved, id)
			return nil
		}
	}
	return domain.ErrSavedJobNotFound
}

func (r memSaved) ListByJobSeeker(_ context.Context, jobSeekerID string) ([]*domain.SavedJobView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.SavedJobView{}
	for _, s := range r.saved {
		if s.JobSeekerID != jobSeekerID {
			continue
		}
		s := s
		v := &domain.SavedJobView{SavedJob: &s}
		if j, ok := r.jobs[s.JobID]; ok {
			v.Job = &domain.JobListing{Job: &j, Company: r.companyRef(j.CompanyID)}
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedOn.After(out[j].SavedOn) })
	return out, nil
}

func (r memSaved) DeleteByJobs(_ context.Context, jobIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, jobID := range jobIDs {
		for id, s := range r.saved {
			if s.JobID == jobID {
				delete(r.saved, id)
			}
		}
	}
	return nil
}

func (r memSaved) DeleteByJobSeeker(_ context.Context, jobSeekerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.saved {
		if s.JobSeekerID == jobSeekerID {
			delete(r.saved, id)
		}
	}
	return nil
}
