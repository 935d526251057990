package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
)

// AccountHandler serves the self-service profile routes of both account types.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// CompanyMe returns the caller's company profile.
//
// @Summary      Get own company profile
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  companyResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /company/me [get]
func (h *AccountHandler) CompanyMe(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	company, err := h.accounts.GetCompany(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyResponse{Company: company})
}

// CompanyByID returns a company's public profile.
//
// @Summary      Get a company
// @Tags         company
// @Produce      json
// @Param        id   path      string  true  "Company id"
// @Success      200  {object}  companyResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /company/{id} [get]
func (h *AccountHandler) CompanyByID(c echo.Context) error {
	company, err := h.accounts.GetCompany(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyResponse{Company: company.Public()})
}

// UpdateCompany applies a partial profile update.
//
// @Summary      Update own company profile
// @Tags         company
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyUpdateRequest  true  "Fields to change"
// @Success      200   {object}  companyResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /company [put]
func (h *AccountHandler) UpdateCompany(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req companyUpdateRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	company, err := h.accounts.UpdateCompany(c.Request().Context(), id.ID, domain.CompanyPatch{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyResponse{Message: "Company updated", Company: company})
}

// DeleteCompany removes the caller's company with its jobs.
//
// @Summary      Delete own company
// @Tags         company
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /company [delete]
func (h *AccountHandler) DeleteCompany(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.accounts.DeleteCompany(c.Request().Context(), id.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Company deleted"})
}

// JobSeekerMe returns the caller's job seeker profile.
//
// @Summary      Get own job seeker profile
// @Tags         jobseeker
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  jobSeekerResponse
// @Failure      401  {object}  map[string]string
// @Router       /jobseeker/me [get]
func (h *AccountHandler) JobSeekerMe(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	js, err := h.accounts.GetJobSeeker(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobSeekerResponse{JobSeeker: js})
}

// UpdateJobSeeker applies a partial profile update.
//
// @Summary      Update own job seeker profile
// @Tags         jobseeker
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobSeekerUpdateRequest  true  "Fields to change"
// @Success      200   {object}  jobSeekerResponse
// @Failure      400   {object}  map[string]string
// @Router       /jobseeker [put]
func (h *AccountHandler) UpdateJobSeeker(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req jobSeekerUpdateRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	js, err := h.accounts.UpdateJobSeeker(c.Request().Context(), id.ID, domain.JobSeekerPatch{
		Name:        req.Name,
		Description: req.Description,
		ResumeLink:  req.ResumeLink,
		Address:     req.Address,
		ContactInfo: req.ContactInfo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobSeekerResponse{Message: "Job seeker updated", JobSeeker: js})
}

// DeleteJobSeeker removes the caller's account with its applications and
// saved jobs.
//
// @Summary      Delete own job seeker account
// @Tags         jobseeker
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Router       /jobseeker [delete]
func (h *AccountHandler) DeleteJobSeeker(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.accounts.DeleteJobSeeker(c.Request().Context(), id.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job seeker deleted"})
}
