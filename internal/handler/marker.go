package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tanishkamehta000/food-truck-tracker/internal/middleware"
	"github.com/tanishkamehta000/food-truck-tracker/internal/service"
)

type MarkerHandler struct {
	maps   *service.MapService
	trucks *service.TruckService
}

func NewMarkerHandler(maps *service.MapService, trucks *service.TruckService) *MarkerHandler {
	return &MarkerHandler{maps: maps, trucks: trucks}
}

// GetMarkers handles GET /api/markers
func (h *MarkerHandler) GetMarkers(c fiber.Ctx) error {
	markers, err := h.maps.VisibleMarkers(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load markers")
	}
	return c.JSON(fiber.Map{"markers": markers, "count": len(markers)})
}

// GetTruck handles GET /api/trucks/:name
func (h *MarkerHandler) GetTruck(c fiber.Ctx) error {
	name, errMsg := middleware.ValidateTruckName(c.Params("name"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	detail, err := h.trucks.Detail(c.Context(), name)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load truck")
	}
	if detail == nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "No sightings for this truck")
	}
	return c.JSON(detail)
}
