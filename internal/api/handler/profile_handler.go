package handler

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/backend/internal/core/ports"
)

// ProfileHandler handles the caller's own profile.
type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get handles GET /api/users/profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ProfileView
// @Router       /api/users/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	view, err := h.profileService.Get(c.Request().Context(), id.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Update handles POST /api/users/profile: multipart form with optional
// text fields and an optional "resume" file part.
//
// @Summary      Create or update own profile
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        headline  formData  string  false  "Headline"
// @Param        bio       formData  string  false  "Bio"
// @Param        location  formData  string  false  "Location"
// @Param        skills    formData  string  false  "Comma-separated skills"
// @Param        resume    formData  file    false  "Resume (PDF)"
// @Success      200  {object}  ports.ProfileView
// @Failure      400  {object}  errorResponse
// @Router       /api/users/profile [post]
func (h *ProfileHandler) Update(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	input := ports.ProfileInput{
		Headline: c.FormValue("headline"),
		Bio:      c.FormValue("bio"),
		Location: c.FormValue("location"),
		Skills:   c.FormValue("skills"),
	}

	var resume *ports.ResumeUpload
	if fileHeader, err := c.FormFile("resume"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "cannot read resume file")
		}
		defer file.Close()
		resume = &ports.ResumeUpload{Filename: fileHeader.Filename, Content: file}
	}

	view, err := h.profileService.Update(c.Request().Context(), id.Subject, input, resume)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// DownloadResume handles GET /api/users/profile/resume: served inline.
//
// @Summary      Download own resume
// @Tags         profile
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      404  {object}  errorResponse
// @Router       /api/users/profile/resume [get]
func (h *ProfileHandler) DownloadResume(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	path, err := h.profileService.ResumeFile(c.Request().Context(), id.Subject)
	if err != nil {
		return err
	}
	return c.Inline(path, filepath.Base(path))
}
