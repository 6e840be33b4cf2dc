package model

import "strings"

// ConversionRequest is what the user submits from the input row
type ConversionRequest struct {
	URL             string
	DesiredFilename string // optional; resolved to a ".pdf" name by the dispatcher
}

// NewConversionRequest creates a request with whitespace trimmed from both fields
func NewConversionRequest(url, filename string) ConversionRequest {
	return ConversionRequest{
		URL:             strings.TrimSpace(url),
		DesiredFilename: strings.TrimSpace(filename),
	}
}

// HasURL reports whether the request carries a non-blank URL
func (r ConversionRequest) HasURL() bool {
	return strings.TrimSpace(r.URL) != ""
}
