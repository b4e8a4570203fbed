package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/tanishkamehta000/food-truck-tracker/internal/middleware"
	"github.com/tanishkamehta000/food-truck-tracker/internal/model"
	"github.com/tanishkamehta000/food-truck-tracker/internal/service"
)

type ReportHandler struct {
	engine  *service.VerificationEngine
	policy  *service.PolicyService
	vendors service.VendorStore
}

func NewReportHandler(engine *service.VerificationEngine, policy *service.PolicyService, vendors service.VendorStore) *ReportHandler {
	return &ReportHandler{engine: engine, policy: policy, vendors: vendors}
}

// Submit handles POST /api/reports
func (h *ReportHandler) Submit(c fiber.Ctx) error {
	var req model.ReportRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	// Field-level validation before anything touches the store. Vendor
	// reports may omit name/cuisine (filled from the profile downstream).
	isVendor := req.Role == model.RoleVendor
	if !isVendor {
		name, errMsg := middleware.ValidateTruckName(req.FoodTruckName)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.FoodTruckName = name

		cuisine, errMsg := middleware.ValidateCuisine(req.CuisineType)
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
		}
		req.CuisineType = cuisine
	}

	crowd, errMsg := middleware.ValidateCrowdLevel(req.CrowdLevel)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.CrowdLevel = crowd

	inventory, errMsg := middleware.ValidateInventoryLevel(req.InventoryLevel)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.InventoryLevel = inventory

	if errMsg := middleware.ValidateCoordinates(req.Latitude, req.Longitude); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	if errMsg := middleware.ValidateReporterID(req.ReporterID); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	if errMsg := middleware.ValidateVendorKey(req.VendorKey); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	req.AdditionalNotes = middleware.ValidateNotes(req.AdditionalNotes)
	req.FavoriteItems = middleware.ValidateFavoriteItems(req.FavoriteItems)

	// Blocking gate: unverified vendors are denied the reporting surface
	// while the policy mode is blocking. This lives at the surface, not in
	// the engine — a vendor past this gate is unconditionally trusted.
	if isVendor {
		if err := h.vendorGate(c, req.VendorKey); err != nil {
			if errors.Is(err, service.ErrVendorBlocked) {
				return middleware.ErrorResponse(c, fiber.StatusForbidden, "VENDOR_NOT_VERIFIED",
					"Your vendor account must be verified before reporting")
			}
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit report")
		}
	}

	result, err := h.engine.Submit(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit report")
	}

	Metrics.ReportsTotal.WithLabelValues(result.Outcome).Inc()
	return c.JSON(result)
}

func (h *ReportHandler) vendorGate(c fiber.Ctx, vendorKey string) error {
	flag := h.policy.Current(c.Context())
	if flag.Mode != model.ModeBlocking {
		return nil
	}
	profile, err := h.vendors.Get(c.Context(), vendorKey)
	if err != nil {
		return err
	}
	if service.VendorBlocked(flag, profile) {
		return service.ErrVendorBlocked
	}
	return nil
}
