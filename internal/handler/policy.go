package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/tanishkamehta000/food-truck-tracker/internal/middleware"
	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
	"github.com/tanishkamehta000/food-truck-tracker/internal/service"
)

type PolicyHandler struct {
	policy *service.PolicyService
}

func NewPolicyHandler(policy *service.PolicyService) *PolicyHandler {
	return &PolicyHandler{policy: policy}
}

// Get handles GET /api/policy — read by clients to gate their own UI.
func (h *PolicyHandler) Get(c fiber.Ctx) error {
	return c.JSON(h.policy.Current(c.Context()))
}

// Update handles PUT /api/admin/policy — the dashboard toggle. Either
// axis may be updated independently.
func (h *PolicyHandler) Update(c fiber.Ctx) error {
	var req model.PolicyUpdateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if req.Mode == nil && req.Method == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FIELDS", "mode or method is required")
	}

	flag, err := h.policy.Set(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update policy")
	}
	return c.JSON(flag)
}
