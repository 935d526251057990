package domain

import "time"

// SavedJob bookmarks a job for a job seeker.
type SavedJob struct {
	ID          string    `json:"id"`
	JobSeekerID string    `json:"jobseekerID"`
	JobID       string    `json:"jobID"`
	SavedOn     time.Time `json:"savedOn"`
}

// SavedJobView is a saved entry with the job and its company expanded. Job is
// nil when the job was removed.
type SavedJobView struct {
	*SavedJob
	Job *JobListing `json:"job"`
}
