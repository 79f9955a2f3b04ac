package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ujsag/newspress/internal/core/ports"
)

// ActivityHandler exposes the admin activity feed built from the audit trail.
type ActivityHandler struct {
	service ports.AuditService
}

func NewActivityHandler(service ports.AuditService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Recent handles GET /api/admin/activity.
//
// @Summary      Recent content mutations, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 50, cap 200)"
// @Success      200    {array}   auditEntryResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /api/admin/activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.service.RecentActivity(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuditResponses(entries))
}
