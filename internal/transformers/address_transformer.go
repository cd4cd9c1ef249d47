package transformers

import (
	"fmt"
	"net/url"
)

const cleanupInstruction = "Correct and format this as a full U.S. address. " +
	"Return ONLY the corrected address in one single line. " +
	"Do not include any explanations or extra text."

type addressTransformer struct {
	listingURLTemplate string
}

// NewAddressTransformer takes a template with a single %s where the encoded address goes.
func NewAddressTransformer(listingURLTemplate string) AddressTransformer {
	return &addressTransformer{listingURLTemplate: listingURLTemplate}
}

// CleanupPrompt embeds the raw address in the completion instruction.
func (t *addressTransformer) CleanupPrompt(address string) string {
	return cleanupInstruction + "\n\nAddress: " + address
}

// ListingURL percent-encodes the address as one path segment of the listing search URL.
func (t *addressTransformer) ListingURL(address string) string {
	return fmt.Sprintf(t.listingURLTemplate, url.PathEscape(address))
}
