package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/caronago/caronago/internal/pkg/logger"
	"github.com/caronago/caronago/internal/pkg/models"
	"github.com/caronago/caronago/internal/utils"
	"github.com/caronago/caronago/services/addresses"
)

// AddressHandler handles HTTP requests for address operations
type AddressHandler struct {
	addressUC addresses.AddressUC
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(addressUC addresses.AddressUC) *AddressHandler {
	return &AddressHandler{
		addressUC: addressUC,
	}
}

// CreateAddress handles address creation requests
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var create models.AddressCreate
	if err := c.Bind(&create); err != nil {
		logger.Warn("Invalid request payload for address creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateAddress"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), &create)
	if err != nil {
		logger.Error("Failed to create address",
			logger.ErrorField(err),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Address created successfully", address)
}

// GetAddress handles address retrieval requests
func (h *AddressHandler) GetAddress(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid address ID")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Address retrieved successfully", address)
}

// ListAddresses handles address listing requests
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	result, err := h.addressUC.ListAddresses(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Addresses retrieved successfully", result)
}

// PatchAddress handles partial address updates
func (h *AddressHandler) PatchAddress(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid address ID")
	}

	var patch models.AddressPatch
	if err := c.Bind(&patch); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	address, err := h.addressUC.PatchAddress(c.Request().Context(), id, &patch)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Address updated successfully", address)
}

// DeleteAddress handles address deletion requests
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Address deleted successfully", nil)
}
