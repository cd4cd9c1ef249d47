package services

import (
	"context"
	"strings"

	apperrors "homeinsight-sqft/internal/errors"
	"homeinsight-sqft/internal/models"
	"homeinsight-sqft/internal/transformers"
	"homeinsight-sqft/internal/validators"
	"homeinsight-sqft/pkg/logger"
)

// AddressService normalizes free-text addresses through the completion service.
type AddressService struct {
	completer Completer
	addrTrans transformers.AddressTransformer
	validator validators.AddressValidator
}

func NewAddressService(
	completer Completer,
	addrTrans transformers.AddressTransformer,
	validator validators.AddressValidator,
) *AddressService {
	return &AddressService{
		completer: completer,
		addrTrans: addrTrans,
		validator: validator,
	}
}

// CleanAddress validates the input, then makes exactly one completion call.
func (s *AddressService) CleanAddress(ctx context.Context, req *models.AddressCleanupRequest) (*models.AddressCleanupResponse, error) {
	if err := s.validator.ValidateCleanup(req); err != nil {
		return nil, err
	}

	completion, err := s.completer.Complete(ctx, s.addrTrans.CleanupPrompt(req.Address))
	if err != nil {
		logger.GlobalLogger.Errorf("Address cleanup failed: address=%q, error=%v", req.Address, err)
		return nil, apperrors.Upstream("completion service call failed", apperrors.MsgCleanAddressFailed, err)
	}

	corrected := strings.TrimSpace(completion)
	logger.GlobalLogger.Debugf("Address cleaned: input=%q, corrected=%q", req.Address, corrected)

	return &models.AddressCleanupResponse{CorrectedAddress: corrected}, nil
}
