package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shiftboard/jobboard-api/internal/core/ports"
)

// SavedJobHandler handles a job seeker's bookmarks.
type SavedJobHandler struct {
	saved ports.SavedJobService
}

func NewSavedJobHandler(saved ports.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{saved: saved}
}

// Save bookmarks a job. Saving twice is not an error.
//
// @Summary      Save a job
// @Tags         savedjobs
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {object}  savedJobResponse  "Already saved"
// @Success      201    {object}  savedJobResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /savedjob/{jobId} [post]
func (h *SavedJobHandler) Save(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	saved, created, err := h.saved.Save(c.Request().Context(), id.ID, c.Param("jobId"))
	if err != nil {
		return err
	}
	if !created {
		return c.JSON(http.StatusOK, savedJobResponse{Message: "Already saved", Saved: saved})
	}
	return c.JSON(http.StatusCreated, savedJobResponse{Message: "Job saved", Saved: saved})
}

// List returns the caller's saved jobs, newest first.
//
// @Summary      List saved jobs
// @Tags         savedjobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  savedJobsResponse
// @Router       /savedjob [get]
func (h *SavedJobHandler) List(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	entries, err := h.saved.List(c.Request().Context(), id.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, savedJobsResponse{Saved: toSavedJobViews(entries)})
}

// Unsave removes a bookmark.
//
// @Summary      Remove a saved job
// @Tags         savedjobs
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {object}  messageResponse
// @Failure      404    {object}  map[string]string
// @Router       /savedjob/{jobId} [delete]
func (h *SavedJobHandler) Unsave(c echo.Context) error {
	id, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.saved.Unsave(c.Request().Context(), id.ID, c.Param("jobId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Job removed from saved list"})
}
