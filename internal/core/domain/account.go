package domain

import "time"

// Role is the account variant carried by a session token.
type Role string

const (
	RoleCompany   Role = "Company"
	RoleJobSeeker Role = "JobSeeker"
)

func (r Role) Valid() bool {
	return r == RoleCompany || r == RoleJobSeeker
}

// Identity is the verified subject of a session token.
type Identity struct {
	ID   string
	Role Role
}

// AccountRef is the expanded form of a reference to an account: id and
// display name only.
type AccountRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CompanyProfile holds the company fields a company may edit itself.
type CompanyProfile struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	Location    string `json:"location" validate:"required,max=200"`
	ContactInfo string `json:"contactInfo" validate:"required,max=200"`
}

// Company is a hiring account.
type Company struct {
	ID string `json:"id"`
	CompanyProfile
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Public strips the fields only the owner may see.
func (c *Company) Public() *Company {
	out := *c
	out.Email = ""
	return &out
}

// CompanyPatch is a partial profile update. Nil fields are left untouched.
type CompanyPatch struct {
	Name        *string
	Description *string
	Location    *string
	ContactInfo *string
}

func (p CompanyPatch) Apply(profile CompanyProfile) CompanyProfile {
	setIfPresent(&profile.Name, p.Name)
	setIfPresent(&profile.Description, p.Description)
	setIfPresent(&profile.Location, p.Location)
	setIfPresent(&profile.ContactInfo, p.ContactInfo)
	return profile
}

// JobSeekerProfile holds the job seeker fields a job seeker may edit.
type JobSeekerProfile struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
	ResumeLink  string `json:"resumeLink" validate:"max=500"`
	Address     string `json:"address" validate:"required,max=300"`
	ContactInfo string `json:"contactInfo" validate:"required,max=200"`
}

// JobSeeker is an applicant account.
type JobSeeker struct {
	ID string `json:"id"`
	JobSeekerProfile
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// JobSeekerPatch is a partial profile update. Nil fields are left untouched.
type JobSeekerPatch struct {
	Name        *string
	Description *string
	ResumeLink  *string
	Address     *string
	ContactInfo *string
}

func (p JobSeekerPatch) Apply(profile JobSeekerProfile) JobSeekerProfile {
	setIfPresent(&profile.Name, p.Name)
	setIfPresent(&profile.Description, p.Description)
	setIfPresent(&profile.ResumeLink, p.ResumeLink)
	setIfPresent(&profile.Address, p.Address)
	setIfPresent(&profile.ContactInfo, p.ContactInfo)
	return profile
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
