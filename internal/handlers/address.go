package handlers

import (
	"errors"
	"io"
	"net/http"

	apperrors "homeinsight-sqft/internal/errors"
	"homeinsight-sqft/internal/models"
	"homeinsight-sqft/internal/services"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// CleanAddress godoc
// @Summary Normalize a free-text address
// @Description Rewrites the address as a single-line U.S. address using the completion service
// @Tags Address
// @Accept json
// @Produce json
// @Param request body models.AddressCleanupRequest true "Raw address"
// @Success 200 {object} models.AddressCleanupResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /clean-address [post]
func (h *AddressHandler) CleanAddress(c *gin.Context) {
	var req models.AddressCleanupRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.addressService.CleanAddress(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// bindJSON decodes the body into dst. An empty body leaves dst zero-valued
// so the service reports the missing field instead of a parse failure.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperrors.NewAppError(apperrors.KindValidation, err.Error(), apperrors.MsgInvalidRequestBody,
			apperrors.ErrCodeInvalidParameters, http.StatusBadRequest, err)
	}
	return nil
}
