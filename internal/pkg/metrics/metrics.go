// Package metrics defines and registers all custom Prometheus metrics for the
// job board API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts account registrations.
// Labels:
//   - role: "Company" or "JobSeeker"
//   - result: "created" or "conflict"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - role: "Company" or "JobSeeker"
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// AccountsDeletedTotal counts self-service account removals.
var AccountsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of deleted accounts, by role.",
	},
	[]string{"role"},
)

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobsPostedTotal counts newly created job postings.
// Label:
//   - urgent: "true" or "false"
var JobsPostedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_posted_total",
		Help:      "Total number of job postings created.",
	},
	[]string{"urgent"},
)

// ── Application metrics ───────────────────────────────────────────────────────

// ApplicationsSubmittedTotal counts submissions.
// Label:
//   - result: "created", "duplicate" (pre-check or unique index) or "in_flight" (guard hit)
var ApplicationsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of application submissions, by result.",
	},
	[]string{"result"},
)

// ApplicationStatusChangesTotal counts status assignments by the new status.
var ApplicationStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_status_changes_total",
		Help:      "Total number of application status changes, by new status.",
	},
	[]string{"status"},
)

// SubmissionGuardErrorsTotal counts submissions that proceeded without the
// in-flight guard because Redis failed.
var SubmissionGuardErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submission_guard_errors_total",
		Help:      "Total number of submission guard failures (submission proceeded unguarded).",
	},
)

// ── Saved job metrics ─────────────────────────────────────────────────────────

// SavedJobsTotal counts save requests.
// Label:
//   - result: "created" or "existing"
var SavedJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saved_jobs_total",
		Help:      "Total number of save requests, by result.",
	},
	[]string{"result"},
)
