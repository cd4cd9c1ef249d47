package handlers

import (
	"net/http"

	"homeinsight-sqft/internal/models"
	"homeinsight-sqft/internal/services"

	"github.com/gin-gonic/gin"
)

type SquareFootageHandler struct {
	sqftService *services.SquareFootageService
}

func NewSquareFootageHandler(sqftService *services.SquareFootageService) *SquareFootageHandler {
	return &SquareFootageHandler{sqftService: sqftService}
}

// GetSquareFootage godoc
// @Summary Resolve square footage
// @Description Returns the manual value when supplied, otherwise scrapes the listing page for the address
// @Tags SquareFootage
// @Accept json
// @Produce json
// @Param request body models.SquareFootageRequest true "Address and/or manual square footage"
// @Success 200 {object} models.SquareFootageResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /get-sqft [post]
func (h *SquareFootageHandler) GetSquareFootage(c *gin.Context) {
	var req models.SquareFootageRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.sqftService.ResolveSquareFootage(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
