package models

// AddressCleanupRequest is the body of POST /clean-address.
type AddressCleanupRequest struct {
	Address string `json:"address" validate:"required"`
}

// AddressCleanupResponse carries the single-line address produced by the completion service.
type AddressCleanupResponse struct {
	CorrectedAddress string `json:"correctedAddress"`
}
