package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shiftboard/jobboard-api/internal/core/domain"
	"github.com/shiftboard/jobboard-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	jobs ports.JobService
}

func NewJobHandler(jobs ports.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Create posts a job owned by the calling company.
//
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobCreateRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /job/create [post]
func (h *JobHandler) Create(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req jobCreateRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	job, err := h.jobs.Create(c.Request().Context(), id.ID, domain.JobDetails{
		Title:       req.Title,
		Pay:         req.Pay,
		Description: req.Description,
		Schedule:    toSchedule(req.Schedule),
		IsUrgent:    req.IsUrgent,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, jobResponse{Message: "Job created", Job: toJobView(job, nil)})
}

// Update changes the provided fields of a job the caller owns.
//
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job id"
// @Param        body  body      jobUpdateRequest  true  "Fields to change"
// @Success      200   {object}  jobResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /job/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	var req jobUpdateRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	job, err := h.jobs.Update(c.Request().Context(), c.Param("id"), id.ID, domain.JobPatch{
		Title:       req.Title,
		Pay:         req.Pay,
		Description: req.Description,
		Schedule:    toSchedule(req.Schedule),
		IsUrgent:    req.IsUrgent,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobResponse{Message: "Job updated", Job: toJobView(job, nil)})
}

// Delete removes a job the caller owns.
//
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /job/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.jobs.Delete(c.Request().Context(), c.Param("id"), id.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted"})
}

// Mine lists the calling company's jobs.
//
// @Summary      List own jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  jobsResponse
// @Router       /job/mine [get]
func (h *JobHandler) Mine(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	jobs, err := h.jobs.List(c.Request().Context(), domain.JobFilter{CompanyID: id.ID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobsResponse{Jobs: toJobViews(jobs)})
}

// List returns every job, newest first.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        company  query     string  false  "Only jobs of this company"
// @Param        urgent   query     bool    false  "Only urgent jobs"
// @Success      200      {object}  jobsResponse
// @Failure      400      {object}  map[string]string
// @Router       /job [get]
func (h *JobHandler) List(c echo.Context) error {
	filter := domain.JobFilter{CompanyID: c.QueryParam("company")}
	if raw := c.QueryParam("urgent"); raw != "" {
		urgent, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.NewValidationError("urgent must be true or false")
		}
		filter.UrgentOnly = urgent
	}

	jobs, err := h.jobs.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobsResponse{Jobs: toJobViews(jobs)})
}

// Get returns one job with its company.
//
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /job/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	listing, err := h.jobs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobResponse{Job: toJobView(listing.Job, listing.Company)})
}
