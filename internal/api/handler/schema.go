package handler

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// --- Requests ---

type companySignupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ContactInfo string `json:"contactInfo"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
}

type jobSeekerSignupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ResumeLink  string `json:"resumeLink"`
	Address     string `json:"address"`
	ContactInfo string `json:"contactInfo"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type companyUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	ContactInfo *string `json:"contactInfo"`
}

type jobSeekerUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ResumeLink  *string `json:"resumeLink"`
	Address     *string `json:"address"`
	ContactInfo *string `json:"contactInfo"`
}

type scheduleEntryRequest struct {
	Day       string `json:"day"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

type jobCreateRequest struct {
	Title       string                 `json:"title"`
	Pay         string                 `json:"pay"`
	Description string                 `json:"description"`
	Schedule    []scheduleEntryRequest `json:"schedule"`
	IsUrgent    bool                   `json:"isUrgent"`
}

type jobUpdateRequest struct {
	Title       string                 `json:"title"`
	Pay         string                 `json:"pay"`
	Description string                 `json:"description"`
	Schedule    []scheduleEntryRequest `json:"schedule"`
	IsUrgent    *bool                  `json:"isUrgent"`
}

type applicationRequest struct {
	JobID       string `json:"jobID" validate:"required,mongodb"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ResumeLink  string `json:"resumeLink"`
	Address     string `json:"address"`
	ContactInfo string `json:"contactInfo"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,status"`
}

// --- Responses ---

type signupCompanyResponse struct {
	Message string            `json:"message"`
	Company domain.AccountRef `json:"company"`
}

type signupJobSeekerResponse struct {
	Message   string            `json:"message"`
	JobSeeker domain.AccountRef `json:"jobSeeker"`
}

type loginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.AccountRef `json:"user"`
}

type companyResponse struct {
	Message string          `json:"message,omitempty"`
	Company *domain.Company `json:"company"`
}

type jobSeekerResponse struct {
	Message   string            `json:"message,omitempty"`
	JobSeeker *domain.JobSeeker `json:"jobSeeker"`
}

// jobView is a job as rendered to clients.
type jobView struct {
	*domain.Job
	Company   *domain.AccountRef `json:"company,omitempty"`
	PostedAgo string             `json:"postedAgo"`
}

type jobResponse struct {
	Message string  `json:"message,omitempty"`
	Job     jobView `json:"job"`
}

type jobsResponse struct {
	Jobs []jobView `json:"jobs"`
}

type applicationResponse struct {
	Message     string `json:"message,omitempty"`
	Application any    `json:"application"`
}

type applicationsResponse struct {
	Applications []*domain.ApplicationView `json:"applications"`
}

type savedJobView struct {
	*domain.SavedJob
	Job *jobView `json:"job"`
}

type savedJobResponse struct {
	Message string           `json:"message"`
	Saved   *domain.SavedJob `json:"saved"`
}

type savedJobsResponse struct {
	Saved []savedJobView `json:"saved"`
}

// --- Mappers ---

func toSchedule(in []scheduleEntryRequest) []domain.ScheduleEntry {
	if in == nil {
		return nil
	}
	out := make([]domain.ScheduleEntry, 0, len(in))
	for _, e := range in {
		out = append(out, domain.ScheduleEntry{Day: domain.Weekday(e.Day), TimeStart: e.TimeStart, TimeEnd: e.TimeEnd})
	}
	return out
}

func toJobView(j *domain.Job, company *domain.AccountRef) jobView {
	return jobView{Job: j, Company: company, PostedAgo: postedAgo(j.PostedOn)}
}

func toJobViews(listings []*domain.JobListing) []jobView {
	out := make([]jobView, 0, len(listings))
	for _, l := range listings {
		out = append(out, toJobView(l.Job, l.Company))
	}
	return out
}

func toSavedJobViews(entries []*domain.SavedJobView) []savedJobView {
	out := make([]savedJobView, 0, len(entries))
	for _, s := range entries {
		v := savedJobView{SavedJob: s.SavedJob}
		if s.Job != nil {
			jv := toJobView(s.Job.Job, s.Job.Company)
			v.Job = &jv
		}
		out = append(out, v)
	}
	return out
}

func postedAgo(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}
