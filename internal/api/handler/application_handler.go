package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	applications ports.ApplicationService
}

func NewApplicationHandler(applications ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Submit applies the calling job seeker to a job.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applicationRequest  true  "Application details"
// @Success      201   {object}  applicationResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /application [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req applicationRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	app, err := h.applications.Submit(c.Request().Context(), ports.SubmitApplicationInput{
		JobID:       req.JobID,
		JobSeekerID: id.ID,
		Applicant: domain.Applicant{
			Name:        req.Name,
			Description: req.Description,
			ResumeLink:  req.ResumeLink,
			Address:     req.Address,
			ContactInfo: req.ContactInfo,
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, applicationResponse{Message: "Application submitted", Application: app})
}

// ListMine lists the calling job seeker's applications.
//
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  applicationsResponse
// @Router       /application/my [get]
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	apps, err := h.applications.ListMine(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationsResponse{Applications: apps})
}

// ListForJob lists the applications to a job the calling company owns.
//
// @Summary      List applications for a job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {object}  applicationsResponse
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /application/job/{jobId} [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	apps, err := h.applications.ListForJob(c.Request().Context(), c.Param("jobId"), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationsResponse{Applications: apps})
}

// Get returns one application to its applicant or to the job's company.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  applicationResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /application/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	view, err := h.applications.Get(c.Request().Context(), c.Param("id"), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationResponse{Application: view})
}

// Withdraw deletes an application the calling job seeker submitted.
//
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /application/{id} [delete]
func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.applications.Withdraw(c.Request().Context(), c.Param("id"), id.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Application withdrawn"})
}

// SetStatus records the calling company's decision on an application.
//
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Application id"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  applicationResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /application/{id} [put]
func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	app, err := h.applications.SetStatus(c.Request().Context(), c.Param("id"), id.ID, domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationResponse{Message: "Application status updated", Application: app})
}
