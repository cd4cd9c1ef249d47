package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SquareFootageRequest is the body of POST /get-sqft.
type SquareFootageRequest struct {
	Address             string      `json:"address" validate:"required_without=ManualSquareFootage"`
	ManualSquareFootage NumericText `json:"manualSquareFootage" validate:"required_without=Address"`
}

// SquareFootageResponse is returned for both manual and scraped lookups.
// ResolvedAddress is null for manual values.
type SquareFootageResponse struct {
	SquareFootage      float64 `json:"squareFootage"`
	ResolvedAddress    *string `json:"resolvedAddress"`
	ConfirmationNeeded bool    `json:"confirmationNeeded"`
}

// NumericText holds a number that clients may send either as a JSON string
// or as a JSON number. An empty value means the field was absent.
type NumericText string

// UnmarshalJSON accepts "1200", 1200 and null.
func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("numeric value must be a string or a number: %s", data)
	}
	*n = NumericText(num.String())
	return nil
}
