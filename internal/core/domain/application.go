package domain

import (
	"errors"
	"time"
)

// ApplicationStatus is the hiring decision on an application.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "Pending"
	StatusShortlisted ApplicationStatus = "Shortlisted"
	StatusAccepted    ApplicationStatus = "Accepted"
	StatusRejected    ApplicationStatus = "Rejected"
)

var ErrInvalidStatus = errors.New("invalid status value")

// Valid reports whether s is one of the four statuses. Any valid status may
// follow any other; the company owning the job decides.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShortlisted, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// StatusChange records a single status assignment.
type StatusChange struct {
	Status    ApplicationStatus `json:"status"`
	ChangedAt time.Time         `json:"changedAt"`
}

// Applicant is the snapshot of applicant details captured at submission.
type Applicant struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	ResumeLink  string `json:"resumeLink" validate:"max=500"`
	Address     string `json:"address" validate:"required,max=300"`
	ContactInfo string `json:"contactInfo" validate:"required,max=200"`
}

// Application is a job seeker's submission against a job.
type Application struct {
	ID          string `json:"id"`
	JobID       string `json:"jobID"`
	JobSeekerID string `json:"jobseekerID"`
	Applicant
	Status        ApplicationStatus `json:"status"`
	StatusHistory []StatusChange    `json:"statusHistory"`
	AppliedOn     time.Time         `json:"appliedOn"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// SubmittedBy is the ownership predicate for withdrawals.
func (a *Application) SubmittedBy(jobSeekerID string) bool {
	return a.JobSeekerID == jobSeekerID
}

// JobRef is the expanded form of a job reference.
type JobRef struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Company *AccountRef `json:"company,omitempty"`
}

// ApplicationView is an application with its references expanded. Expanded
// fields are nil when the referent no longer exists or was not requested.
type ApplicationView struct {
	*Application
	Job          *JobRef     `json:"job,omitempty"`
	JobSeeker    *AccountRef `json:"jobseeker,omitempty"`
	JobCompanyID string      `json:"-"`
}
