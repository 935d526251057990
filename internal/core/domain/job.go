package domain

import "time"

// Weekday is the day a shift falls on.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var weekdays = map[Weekday]struct{}{
	Monday: {}, Tuesday: {}, Wednesday: {}, Thursday: {}, Friday: {}, Saturday: {}, Sunday: {},
}

func (d Weekday) Valid() bool {
	_, ok := weekdays[d]
	return ok
}

// ScheduleEntry is one shift of a job. Times are "HH:MM"; an end time before
// the start time is an overnight shift.
type ScheduleEntry struct {
	Day       Weekday `json:"day" validate:"required,weekday"`
	TimeStart string  `json:"time_start" validate:"required,datetime=15:04"`
	TimeEnd   string  `json:"time_end" validate:"required,datetime=15:04"`
}

// JobDetails is the part of a job its owner writes.
type JobDetails struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Pay         string          `json:"pay" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=3000"`
	Schedule    []ScheduleEntry `json:"schedule" validate:"required,dive"`
	IsUrgent    bool            `json:"isUrgent"`
}

// Job is a posting owned by exactly one company.
type Job struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyID"`
	JobDetails
	Slug     string    `json:"slug"`
	PostedOn time.Time `json:"postedOn"`
}

// OwnedBy is the ownership predicate for job mutations.
func (j *Job) OwnedBy(companyID string) bool {
	return j.CompanyID == companyID
}

// JobListing is a job with its owning company expanded. Company is nil when
// the company no longer exists.
type JobListing struct {
	*Job
	Company *AccountRef `json:"company"`
}

// JobPatch is a partial job update. Empty strings and nil values are ignored.
type JobPatch struct {
	Title       string
	Pay         string
	Description string
	Schedule    []ScheduleEntry
	IsUrgent    *bool
}

func (p JobPatch) Apply(d JobDetails) JobDetails {
	if p.Title != "" {
		d.Title = p.Title
	}
	if p.Pay != "" {
		d.Pay = p.Pay
	}
	if p.Description != "" {
		d.Description = p.Description
	}
	if p.Schedule != nil {
		d.Schedule = p.Schedule
	}
	if p.IsUrgent != nil {
		d.IsUrgent = *p.IsUrgent
	}
	return d
}

// JobFilter narrows a job listing. Zero values mean no restriction.
type JobFilter struct {
	CompanyID  string
	UrgentOnly bool
}
