package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/tanishkamehta000/food-truck-tracker/internal/middleware"
	"github.com/tanishkamehta000/food-truck-tracker/internal/service"
)

type AdminHandler struct {
	retention *service.RetentionService
	admin     *service.AdminService
}

func NewAdminHandler(retention *service.RetentionService, admin *service.AdminService) *AdminHandler {
	return &AdminHandler{retention: retention, admin: admin}
}

// Sweep handles POST /api/admin/sweep — on-demand retention sweep.
func (h *AdminHandler) Sweep(c fiber.Ctx) error {
	res, err := h.retention.SweepExpired(c.Context(), time.Now())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Sweep failed")
	}
	Metrics.SweptTotal.Add(float64(res.DeletedCount))
	return c.JSON(res)
}

// DeleteTruck handles DELETE /api/admin/sightings?name=
func (h *AdminHandler) DeleteTruck(c fiber.Ctx) error {
	name, errMsg := middleware.ValidateTruckName(c.Query("name"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	deleted, err := h.admin.DeleteTruck(c.Context(), name)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete sightings")
	}
	if deleted == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "No sightings for this truck")
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}
