package errors

// User-friendly error messages
const (
	MsgAddressRequired            = "Address is required"
	MsgAddressOrManualRequired    = "Either address or manual square footage is required."
	MsgInvalidManualSquareFootage = "Invalid manual square footage."
	MsgInvalidRequestBody         = "The request body is not valid JSON. Please check your input and try again."
	MsgCleanAddressFailed         = "Failed to clean address"
	MsgFetchSquareFootageFailed   = "Failed to fetch square footage"
	MsgSquareFootageNotFound      = "Square footage not found in HTML"
	MsgInternalError              = "Something went wrong on our end. Please try again later."
)
