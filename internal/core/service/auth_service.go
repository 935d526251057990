package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
	"github.com/shiftboard/jobboard-api/internal/pkg/metrics"
	"github.com/shiftboard/jobboard-api/internal/pkg/validation"
)

// hashCost is the bcrypt work factor for stored passwords.
var hashCost = 12

type credentials struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required"`
}

type authService struct {
	companies ports.CompanyRepository
	seekers   ports.JobSeekerRepository
	tokens    ports.TokenService
	validate  *validation.Validator
	log       zerolog.Logger

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService returns the signup and login use cases for both account
// variants.
func NewAuthService(
	companies ports.CompanyRepository,
	seekers ports.JobSeekerRepository,
	tokens ports.TokenService,
	validate *validation.Validator,
	log zerolog.Logger,
) ports.AuthService {
	return &authService{
		companies: companies,
		seekers:   seekers,
		tokens:    tokens,
		validate:  validate,
		log:       log,
	}
}

func (s *authService) SignupCompany(ctx context.Context, in ports.SignupCompanyInput) (*domain.Company, error) {
	profile := normalizeCompanyProfile(in.Profile)
	creds := credentials{Email: normalizeEmail(in.Email), Password: in.Password}
	if err := s.validateSignup(profile, creds); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("signup company: hash password: %w", err)
	}

	ts := now()
	c := &domain.Company{
		CompanyProfile: profile,
		Email:          creds.Email,
		PasswordHash:   string(hash),
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	if err := s.companies.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignupsTotal.WithLabelValues(string(domain.RoleCompany), "conflict").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("signup company: %w", err)
	}

	metrics.SignupsTotal.WithLabelValues(string(domain.RoleCompany), "created").Inc()
	s.log.Info().Str("company_id", c.ID).Msg("company registered")
	return c, nil
}

func (s *authService) SignupJobSeeker(ctx context.Context, in ports.SignupJobSeekerInput) (*domain.JobSeeker, error) {
	profile := normalizeJobSeekerProfile(in.Profile)
	creds := credentials{Email: normalizeEmail(in.Email), Password: in.Password}
	if err := s.validateSignup(profile, creds); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("signup job seeker: hash password: %w", err)
	}

	ts := now()
	js := &domain.JobSeeker{
		JobSeekerProfile: profile,
		Email:            creds.Email,
		PasswordHash:     string(hash),
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
	if err := s.seekers.Create(ctx, js); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignupsTotal.WithLabelValues(string(domain.RoleJobSeeker), "conflict").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("signup job seeker: %w", err)
	}

	metrics.SignupsTotal.WithLabelValues(string(domain.RoleJobSeeker), "created").Inc()
	s.log.Info().Str("jobseeker_id", js.ID).Msg("job seeker registered")
	return js, nil
}

// Login returns the same ErrInvalidCredentials for an unknown email and a
// wrong password.
func (s *authService) Login(ctx context.Context, role domain.Role, email, password string) (*ports.LoginResult, error) {
	creds := credentials{Email: normalizeEmail(email), Password: password}
	if creds.Email == "" || creds.Password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	var (
		user domain.AccountRef
		hash string
		err  error
	)
	switch role {
	case domain.RoleCompany:
		var c *domain.Company
		if c, err = s.companies.FindByEmail(ctx, creds.Email); err == nil {
			user, hash = domain.AccountRef{ID: c.ID, Name: c.Name}, c.PasswordHash
		}
	case domain.RoleJobSeeker:
		var js *domain.JobSeeker
		if js, err = s.seekers.FindByEmail(ctx, creds.Email); err == nil {
			user, hash = domain.AccountRef{ID: js.ID, Name: js.Name}, js.PasswordHash
		}
	default:
		return nil, domain.NewValidationError("unknown account type")
	}

	if err != nil {
		if !domain.IsNotFound(err) {
			return nil, fmt.Errorf("login: %w", err)
		}
		// Spend the same time as a real comparison.
		_ = bcrypt.CompareHashAndPassword(s.fallbackHash(), []byte(creds.Password))
		metrics.LoginsTotal.WithLabelValues(string(role), "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)) != nil {
		metrics.LoginsTotal.WithLabelValues(string(role), "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, role)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()
	return &ports.LoginResult{Token: token, User: user, Role: role}, nil
}

func (s *authService) validateSignup(profile any, creds credentials) error {
	if err := s.validate.Struct(profile); err != nil {
		return err
	}
	return s.validate.Struct(creds)
}

func (s *authService) fallbackHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), hashCost)
	})
	return s.dummyHash
}
