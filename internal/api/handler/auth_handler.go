package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupCompany creates a company account.
//
// @Summary      Register a company
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      companySignupRequest  true  "Company registration details"
// @Success      201   {object}  signupCompanyResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /signup/company [post]
func (h *AuthHandler) SignupCompany(c echo.Context) error {
	var req companySignupRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	company, err := h.authService.SignupCompany(c.Request().Context(), ports.SignupCompanyInput{
		Profile: domain.CompanyProfile{
			Name:        req.Name,
			Description: req.Description,
			Location:    req.Location,
			ContactInfo: req.ContactInfo,
		},
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signupCompanyResponse{
		Message: "Company created",
		Company: domain.AccountRef{ID: company.ID, Name: company.Name},
	})
}

// SignupJobSeeker creates a job seeker account.
//
// @Summary      Register a job seeker
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      jobSeekerSignupRequest  true  "Job seeker registration details"
// @Success      201   {object}  signupJobSeekerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /signup/jobseeker [post]
func (h *AuthHandler) SignupJobSeeker(c echo.Context) error {
	var req jobSeekerSignupRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	js, err := h.authService.SignupJobSeeker(c.Request().Context(), ports.SignupJobSeekerInput{
		Profile: domain.JobSeekerProfile{
			Name:        req.Name,
			Description: req.Description,
			ResumeLink:  req.ResumeLink,
			Address:     req.Address,
			ContactInfo: req.ContactInfo,
		},
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signupJobSeekerResponse{
		Message:   "Job seeker created",
		JobSeeker: domain.AccountRef{ID: js.ID, Name: js.Name},
	})
}

// LoginCompany authenticates a company and returns a session token.
//
// @Summary      Company login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login/company [post]
func (h *AuthHandler) LoginCompany(c echo.Context) error {
	return h.login(c, domain.RoleCompany)
}

// LoginJobSeeker authenticates a job seeker and returns a session token.
//
// @Summary      Job seeker login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /login/jobseeker [post]
func (h *AuthHandler) LoginJobSeeker(c echo.Context) error {
	return h.login(c, domain.RoleJobSeeker)
}

func (h *AuthHandler) login(c echo.Context, role domain.Role) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), role, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Message: "Login successful", Token: res.Token, User: res.User})
}
