package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobhive/backend/internal/core/ports"
)

// AdminHandler handles platform moderation. Every route is registered
// behind the ADMIN gate.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Stats handles GET /api/admin/stats.
//
// @Summary      Platform statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.PlatformStats
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Users handles GET /api/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /api/admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.adminService.Users(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser handles DELETE /api/admin/users/:id.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  statusMessage
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminService.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusMessage{Message: "user deleted"})
}

// Jobs handles GET /api/admin/jobs.
//
// @Summary      List all postings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  jobResponse
// @Router       /api/admin/jobs [get]
func (h *AdminHandler) Jobs(c echo.Context) error {
	jobs, err := h.adminService.Jobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(jobs))
}

// DeleteJob handles DELETE /api/admin/jobs/:id.
//
// @Summary      Delete a posting
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Job ID"
// @Success      200  {object}  statusMessage
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/jobs/{id} [delete]
func (h *AdminHandler) DeleteJob(c echo.Context) error {
	if err := h.adminService.DeleteJob(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusMessage{Message: "job deleted"})
}
