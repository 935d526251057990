package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
	"github.com/shiftboard/jobboard-api/internal/pkg/validation"
)

const (
	companyID   = "64b000000000000000000001"
	jobSeekerID = "64b000000000000000000002"
	jobID       = "64b000000000000000000003"
	appID       = "64b000000000000000000004"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator(validation.New())
	return e
}

// newContext builds a request context. A non-nil identity is set the way
// the Authenticate middleware would.
func newContext(e *echo.Echo, method, target, body string, id *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != nil {
		c.Set("identity", *id)
	}
	return c, rec
}

func asCompany() *domain.Identity {
	return &domain.Identity{ID: companyID, Role: domain.RoleCompany}
}

func asJobSeeker() *domain.Identity {
	return &domain.Identity{ID: jobSeekerID, Role: domain.RoleJobSeeker}
}

type stubAuthService struct {
	signupCompanyFn   func(ctx context.Context, in ports.SignupCompanyInput) (*domain.Company, error)
	signupJobSeekerFn func(ctx context.Context, in ports.SignupJobSeekerInput) (*domain.JobSeeker, error)
	loginFn           func(ctx context.Context, role domain.Role, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) SignupCompany(ctx context.Context, in ports.SignupCompanyInput) (*domain.Company, error) {
	return s.signupCompanyFn(ctx, in)
}

func (s *stubAuthService) SignupJobSeeker(ctx context.Context, in ports.SignupJobSeekerInput) (*domain.JobSeeker, error) {
	return s.signupJobSeekerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, role domain.Role, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, role, email, password)
}

type stubAccountService struct {
	ports.AccountService
	getCompanyFn    func(ctx context.Context, id string) (*domain.Company, error)
	updateCompanyFn func(ctx context.Context, id string, patch domain.CompanyPatch) (*domain.Company, error)
	deleteSeekerFn  func(ctx context.Context, id string) error
}

func (s *stubAccountService) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.getCompanyFn(ctx, id)
}

func (s *stubAccountService) UpdateCompany(ctx context.Context, id string, patch domain.CompanyPatch) (*domain.Company, error) {
	return s.updateCompanyFn(ctx, id, patch)
}

func (s *stubAccountService) DeleteJobSeeker(ctx context.Context, id string) error {
	return s.deleteSeekerFn(ctx, id)
}

type stubJobService struct {
	ports.JobService
	createFn func(ctx context.Context, companyID string, details domain.JobDetails) (*domain.Job, error)
	updateFn func(ctx context.Context, jobID, companyID string, patch domain.JobPatch) (*domain.Job, error)
	listFn   func(ctx context.Context, filter domain.JobFilter) ([]*domain.JobListing, error)
	getFn    func(ctx context.Context, jobID string) (*domain.JobListing, error)
}

func (s *stubJobService) Create(ctx context.Context, companyID string, details domain.JobDetails) (*domain.Job, error) {
	return s.createFn(ctx, companyID, details)
}

func (s *stubJobService) Update(ctx context.Context, jobID, companyID string, patch domain.JobPatch) (*domain.Job, error) {
	return s.updateFn(ctx, jobID, companyID, patch)
}

func (s *stubJobService) List(ctx context.Context, filter domain.JobFilter) ([]*domain.JobListing, error) {
	return s.listFn(ctx, filter)
}

func (s *stubJobService) Get(ctx context.Context, jobID string) (*domain.JobListing, error) {
	return s.getFn(ctx, jobID)
}

type stubApplicationService struct {
	ports.ApplicationService
	submitFn    func(ctx context.Context, in ports.SubmitApplicationInput) (*domain.Application, error)
	getFn       func(ctx context.Context, id string, caller domain.Identity) (*domain.ApplicationView, error)
	withdrawFn  func(ctx context.Context, id, jobSeekerID string) error
	setStatusFn func(ctx context.Context, id, companyID string, status domain.ApplicationStatus) (*domain.Application, error)
}

func (s *stubApplicationService) Submit(ctx context.Context, in ports.SubmitApplicationInput) (*domain.Application, error) {
	return s.submitFn(ctx, in)
}

func (s *stubApplicationService) Get(ctx context.Context, id string, caller domain.Identity) (*domain.ApplicationView, error) {
	return s.getFn(ctx, id, caller)
}

func (s *stubApplicationService) Withdraw(ctx context.Context, id, jobSeekerID string) error {
	return s.withdrawFn(ctx, id, jobSeekerID)
}

func (s *stubApplicationService) SetStatus(ctx context.Context, id, companyID string, status domain.ApplicationStatus) (*domain.Application, error) {
	return s.setStatusFn(ctx, id, companyID, status)
}

type stubSavedJobService struct {
	ports.SavedJobService
	saveFn func(ctx context.Context, jobSeekerID, jobID string) (*domain.SavedJob, bool, error)
	listFn func(ctx context.Context, jobSeekerID string) ([]*domain.SavedJobView, error)
}

func (s *stubSavedJobService) Save(ctx context.Context, jobSeekerID, jobID string) (*domain.SavedJob, bool, error) {
	return s.saveFn(ctx, jobSeekerID, jobID)
}

func (s *stubSavedJobService) List(ctx context.Context, jobSeekerID string) ([]*domain.SavedJobView, error) {
	return s.listFn(ctx, jobSeekerID)
}
