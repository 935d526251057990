package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// richText keeps basic formatting in user-written descriptions and drops
// scripts, styles and event handlers.
var richText = bluemonday.UGCPolicy()

// cleanDescription strips unsafe markup but keeps plain text as written: the
// sanitizer escapes &, < and quotes, which is undone since responses are JSON.
// Unescaping can surface markup that was sent pre-escaped, so the pass is
// repeated until the text is stable.
func cleanDescription(s string) string {
	for range 4 {
		next := html.UnescapeString(richText.Sanitize(s))
		if next == s {
			return strings.TrimSpace(s)
		}
		s = next
	}
	return strings.TrimSpace(richText.Sanitize(s))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeCompanyProfile(p domain.CompanyProfile) domain.CompanyProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = cleanDescription(p.Description)
	p.Location = strings.TrimSpace(p.Location)
	p.ContactInfo = strings.TrimSpace(p.ContactInfo)
	return p
}

func normalizeJobSeekerProfile(p domain.JobSeekerProfile) domain.JobSeekerProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = cleanDescription(p.Description)
	p.ResumeLink = strings.TrimSpace(p.ResumeLink)
	p.Address = strings.TrimSpace(p.Address)
	p.ContactInfo = strings.TrimSpace(p.ContactInfo)
	return p
}

func normalizeApplicant(a domain.Applicant) domain.Applicant {
	a.Name = strings.TrimSpace(a.Name)
	a.Description = cleanDescription(a.Description)
	a.ResumeLink = strings.TrimSpace(a.ResumeLink)
	a.Address = strings.TrimSpace(a.Address)
	a.ContactInfo = strings.TrimSpace(a.ContactInfo)
	return a
}

func normalizeJobDetails(d domain.JobDetails) domain.JobDetails {
	d.Title = strings.TrimSpace(d.Title)
	d.Pay = strings.TrimSpace(d.Pay)
	d.Description = cleanDescription(d.Description)
	if d.Schedule != nil {
		schedule := make([]domain.ScheduleEntry, len(d.Schedule))
		for i, e := range d.Schedule {
			e.TimeStart = strings.TrimSpace(e.TimeStart)
			e.TimeEnd = strings.TrimSpace(e.TimeEnd)
			schedule[i] = e
		}
		d.Schedule = schedule
	}
	return d
}
