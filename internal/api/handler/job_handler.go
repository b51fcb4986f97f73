package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

// JobHandler handles job posting endpoints.
type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List handles GET /api/jobs: public, filtered, paginated.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        keyword     query  string  false  "Partial match on title or description"
// @Param        location    query  string  false  "Partial match on location"
// @Param        min_salary  query  number  false  "Minimum salary"
// @Param        type        query  string  false  "Job type"  Enums(REMOTE, HYBRID, ONSITE)
// @Param        page        query  int     false  "Page (1-based)"
// @Param        limit       query  int     false  "Page size (max 100)"
// @Success      200  {object}  jobListResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	filter := ports.ListJobsFilter{
		Keyword:  c.QueryParam("keyword"),
		Location: c.QueryParam("location"),
		Type:     c.QueryParam("type"),
	}
	if raw := c.QueryParam("min_salary"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "min_salary must be a number")
		}
		filter.MinSalary = v
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	page, err := h.jobService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobListResponse(page))
}

// Get handles GET /api/jobs/:id: public.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.jobService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Create handles POST /api/jobs: recruiters only.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job posting"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	jobType, err := domain.ParseJobType(req.Type)
	if err != nil {
		return err
	}

	job, err := h.jobService.Create(c.Request().Context(), ports.JobInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Salary:       req.Salary,
		Type:         jobType,
	}, id.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// MyJobs handles GET /api/jobs/my-jobs: postings of the calling recruiter.
//
// @Summary      List own postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  jobResponse
// @Router       /api/jobs/my-jobs [get]
func (h *JobHandler) MyJobs(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	jobs, err := h.jobService.ByRecruiter(c.Request().Context(), id.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(jobs))
}

// ToggleSave handles POST /api/jobs/:id/save: save or unsave a posting.
//
// @Summary      Toggle saved job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  savedToggleResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id}/save [post]
func (h *JobHandler) ToggleSave(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	jobID := c.Param("id")
	saved, err := h.jobService.ToggleSaved(c.Request().Context(), id.Subject, jobID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, savedToggleResponse{JobID: jobID, Saved: saved})
}

// Saved handles GET /api/jobs/saved: the caller's saved postings.
//
// @Summary      List saved jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  jobResponse
// @Router       /api/jobs/saved [get]
func (h *JobHandler) Saved(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	jobs, err := h.jobService.Saved(c.Request().Context(), id.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(jobs))
}
