package validators

import (
	"net/http"
	"testing"

	apperrors "homeinsight-sqft/internal/errors"
	"homeinsight-sqft/internal/models"
)

func TestValidateCleanup(t *testing.T) {
	v := NewAddressValidator()

	for _, address := range []string{"", "   ", "\n\t"} {
		err := v.ValidateCleanup(&models.AddressCleanupRequest{Address: address})
		appErr := apperrors.MapError(err)
		if appErr == nil || appErr.HTTPStatus != http.StatusBadRequest {
			t.Fatalf("%q: expected 400 validation error, got %v", address, err)
		}
		if appErr.UserMessage != apperrors.MsgAddressRequired {
			t.Fatalf("%q: unexpected message %q", address, appErr.UserMessage)
		}
	}

	req := &models.AddressCleanupRequest{Address: "  12 elm st  "}
	if err := v.ValidateCleanup(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Address != "12 elm st" {
		t.Fatalf("expected trimmed address, got %q", req.Address)
	}

	if err := v.ValidateCleanup(nil); !apperrors.IsKind(err, apperrors.KindValidation) {
		t.Fatalf("expected validation error for nil request, got %v", err)
	}
}
