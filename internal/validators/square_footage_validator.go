package validators

import (
	"math"
	"strconv"
	"strings"

	apperrors "homeinsight-sqft/internal/errors"
	"homeinsight-sqft/internal/models"

	"github.com/go-playground/validator/v10"
)

type squareFootageValidator struct {
	v *validator.Validate
}

func NewSquareFootageValidator() SquareFootageValidator {
	return &squareFootageValidator{v: validator.New()}
}

// ValidateLookup trims both fields in place and requires at least one of them.
func (sv *squareFootageValidator) ValidateLookup(req *models.SquareFootageRequest) error {
	if req == nil {
		return apperrors.Validation(apperrors.ErrCodeInvalidParameters, apperrors.MsgAddressOrManualRequired)
	}
	req.Address = strings.TrimSpace(req.Address)
	req.ManualSquareFootage = models.NumericText(strings.TrimSpace(string(req.ManualSquareFootage)))
	if err := sv.v.Struct(req); err != nil {
		return apperrors.Validation(apperrors.ErrCodeInvalidParameters, apperrors.MsgAddressOrManualRequired)
	}
	return nil
}

// ParseManualSquareFootage accepts only finite values greater than zero.
func (sv *squareFootageValidator) ParseManualSquareFootage(raw models.NumericText) (float64, error) {
	sqft, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	if err != nil || math.IsNaN(sqft) || math.IsInf(sqft, 0) || sqft <= 0 {
		return 0, apperrors.Validation(apperrors.ErrCodeInvalidSquareFootage, apperrors.MsgInvalidManualSquareFootage)
	}
	return sqft, nil
}
