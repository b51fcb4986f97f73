package handler

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/backend/internal/core/domain"
	"github.com/jobhive/backend/internal/core/ports"
)

// ApplicationHandler handles the apply/review workflow.
type ApplicationHandler struct {
	appService ports.ApplicationService
}

func NewApplicationHandler(appService ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

type statusMessage struct {
	Message string `json:"message"`
}

// Apply handles POST /api/applications/:jobID/apply: multipart, with a
// required "resume" file part.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        jobID   path      string  true  "Job ID"
// @Param        resume  formData  file    true  "Resume (PDF)"
// @Success      201  {object}  statusMessage
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/applications/{jobID}/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "resume file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read resume file")
	}
	defer file.Close()

	err = h.appService.Apply(c.Request().Context(), c.Param("jobID"), id.Subject, ports.ResumeUpload{
		Filename: fileHeader.Filename,
		Content:  file,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, statusMessage{Message: "application submitted"})
}

// MyApplications handles GET /api/applications/my-applications.
//
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.ApplicationView
// @Router       /api/applications/my-applications [get]
func (h *ApplicationHandler) MyApplications(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	views, err := h.appService.MyApplications(c.Request().Context(), id.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// ForJob handles GET /api/applications/jobs/:jobID: applicants for one of
// the calling recruiter's postings.
//
// @Summary      List applicants for a posting
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        jobID  path  string  true  "Job ID"
// @Success      200  {array}   ports.ApplicationView
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/applications/jobs/{jobID} [get]
func (h *ApplicationHandler) ForJob(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	views, err := h.appService.ForJob(c.Request().Context(), c.Param("jobID"), id.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// UpdateStatus handles PUT /api/applications/:id/status?status=ACCEPTED.
//
// @Summary      Update application status
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id      path   string  true  "Application ID"
// @Param        status  query  string  true  "New status"  Enums(PENDING, REVIEWED, ACCEPTED, REJECTED)
// @Success      200  {object}  statusMessage
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	status, err := domain.ParseApplicationStatus(c.QueryParam("status"))
	if err != nil {
		return err
	}

	if err := h.appService.UpdateStatus(c.Request().Context(), c.Param("id"), status, id.Subject); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusMessage{Message: "application status updated to " + string(status)})
}

// DownloadResume handles GET /api/applications/:id/resume: served as an
// attachment to the applicant or the posting's recruiter.
//
// @Summary      Download an application's resume
// @Tags         applications
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "Application ID"
// @Success      200  {file}    file
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/applications/{id}/resume [get]
func (h *ApplicationHandler) DownloadResume(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	path, err := h.appService.ResumeFile(c.Request().Context(), c.Param("id"), id)
	if err != nil {
		return err
	}
	return c.Attachment(path, filepath.Base(path))
}
