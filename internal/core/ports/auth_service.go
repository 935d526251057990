package ports

import (
	"context"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
)

// SignupCompanyInput carries a company registration.
type SignupCompanyInput struct {
	Profile  domain.CompanyProfile
	Email    string
	Password string
}

// SignupJobSeekerInput carries a job seeker registration.
type SignupJobSeekerInput struct {
	Profile  domain.JobSeekerProfile
	Email    string
	Password string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token string
	User  domain.AccountRef
	Role  domain.Role
}

type AuthService interface {
	SignupCompany(ctx context.Context, in SignupCompanyInput) (*domain.Company, error)
	SignupJobSeeker(ctx context.Context, in SignupJobSeekerInput) (*domain.JobSeeker, error)
	Login(ctx context.Context, role domain.Role, email, password string) (*LoginResult, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(subjectID string, role domain.Role) (string, error)
	Verify(token string) (*domain.Identity, error)
}
