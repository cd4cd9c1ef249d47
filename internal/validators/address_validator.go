package validators

import (
	"strings"

	apperrors "homeinsight-sqft/internal/errors"
	"homeinsight-sqft/internal/models"

	"github.com/go-playground/validator/v10"
)

type addressValidator struct {
	v *validator.Validate
}

func NewAddressValidator() AddressValidator {
	return &addressValidator{v: validator.New()}
}

// ValidateCleanup trims the address in place and rejects it when nothing is left.
func (av *addressValidator) ValidateCleanup(req *models.AddressCleanupRequest) error {
	if req == nil {
		return apperrors.Validation(apperrors.ErrCodeInvalidAddress, apperrors.MsgAddressRequired)
	}
	req.Address = strings.TrimSpace(req.Address)
	if err := av.v.Struct(req); err != nil {
		return apperrors.Validation(apperrors.ErrCodeInvalidAddress, apperrors.MsgAddressRequired)
	}
	return nil
}
