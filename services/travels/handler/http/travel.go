package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
	"github.com/caronago/caronago/services/travels"
)

// TravelHandler handles HTTP requests for travel operations
type TravelHandler struct {
	travelUC travels.TravelUC
}

// NewTravelHandler creates a new travel handler
func NewTravelHandler(travelUC travels.TravelUC) *TravelHandler {
	return &TravelHandler{
		travelUC: travelUC,
	}
}

// CreateTravel handles travel creation requests
func (h *TravelHandler) CreateTravel(c echo.Context) error {
	var travel models.Travel
	if err := c.Bind(&travel); err != nil {
		logger.Warn("Invalid request payload for travel creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateTravel"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.travelUC.CreateTravel(c.Request().Context(), &travel); err != nil {
		logger.Error("Failed to create travel",
			logger.ErrorField(err),
			logger.String("driver_id", travel.DriverID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Travel created successfully", travel)
}

// GetTravel handles travel retrieval requests
func (h *TravelHandler) GetTravel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid travel ID")
	}

	travel, err := h.travelUC.GetTravel(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Travel retrieved successfully", travel)
}

// SearchTravels handles listing with the optional proximity filter
func (h *TravelHandler) SearchTravels(c echo.Context) error {
	params, err := parseSearchParams(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	result, err := h.travelUC.SearchTravels(c.Request().Context(), params)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Travels retrieved successfully", result)
}

// PatchTravel handles partial travel updates
func (h *TravelHandler) PatchTravel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid travel ID")
	}

	var patch models.TravelPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	travel, err := h.travelUC.PatchTravel(c.Request().Context(), id, &patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Travel updated successfully", travel)
}

// DeleteTravel handles travel deletion requests
func (h *TravelHandler) DeleteTravel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid travel ID")
	}

	if err := h.travelUC.DeleteTravel(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Travel deleted successfully", nil)
}

func parseSearchParams(c echo.Context) (models.TravelSearchParams, error) {
	var params models.TravelSearchParams

	fields := map[string]**float64{
		"origin_lat":      &params.OriginLat,
		"origin_lng":      &params.OriginLng,
		"destination_lat": &params.DestLat,
		"destination_lng": &params.DestLng,
		"radius":          &params.RadiusM,
	}

	for name, target := range fields {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("invalid %s parameter", name)
		}
		*target = &value
	}

	return params, nil
}
