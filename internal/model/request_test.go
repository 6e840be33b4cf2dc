package model

import "testing"

func TestNewConversionRequest(t *testing.T) {
	tests := []struct {
		url, filename         string
		expectedURL, expected string
		hasURL                bool
	}{
		{"  https://example.com/job \n", " resume ", "https://example.com/job", "resume", true},
		{"", "", "", "", false},
		{"   ", "cv.pdf", "", "cv.pdf", false},
	}

	for _, test := range tests {
		req := NewConversionRequest(test.url, test.filename)
		if req.URL != test.expectedURL {
			t.Errorf("URL = %q, expected %q", req.URL, test.expectedURL)
		}
		if req.DesiredFilename != test.expected {
			t.Errorf("DesiredFilename = %q, expected %q", req.DesiredFilename, test.expected)
		}
		if req.HasURL() != test.hasURL {
			t.Errorf("HasURL() = %v, expected %v", req.HasURL(), test.hasURL)
		}
	}
}
