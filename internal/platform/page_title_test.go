package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
)

func TestNewPageTitleService(t *testing.T) {
	service := NewPageTitleService()

	if service == nil {
		t.Fatal("service should not be nil")
	}

	if service.timeout != DefaultTitleTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTitleTimeout, service.timeout)
	}

	service.SetTimeout(3 * time.Second)
	if service.timeout != 3*time.Second {
		t.Errorf("expected timeout %v, got %v", 3*time.Second, service.timeout)
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "open graph title wins",
			html:     `<html><head><meta property="og:title" content="Senior Go Engineer"><title>Jobs | Acme</title></head></html>`,
			expected: "Senior Go Engineer",
		},
		{
			name:     "twitter title when no open graph",
			html:     `<html><head><meta name="twitter:title" content="Platform Engineer"><title>Jobs</title></head></html>`,
			expected: "Platform Engineer",
		},
		{
			name:     "title element with whitespace",
			html:     "<html><head><title>\n  Backend   Developer \n</title></head></html>",
			expected: "Backend Developer",
		},
		{
			name:     "empty open graph falls back to title",
			html:     `<html><head><meta property="og:title" content="  "><title>Data Engineer</title></head></html>`,
			expected: "Data Engineer",
		},
		{
			name:     "first heading as last resort",
			html:     `<html><body><h1>SRE</h1><h1>Other</h1></body></html>`,
			expected: "SRE",
		},
		{
			name:     "no title at all",
			html:     `<html><body><p>text</p></body></html>`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("failed to parse html: %v", err)
			}

			result := ExtractTitle(doc)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestFetchTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/job":
			if r.Header.Get("User-Agent") != TitleUserAgent {
				t.Errorf("expected User-Agent %q, got %q", TitleUserAgent, r.Header.Get("User-Agent"))
			}
			w.Write([]byte(`<html><head><title>Staff Engineer - Acme</title></head></html>`))
		case "/empty":
			w.Write([]byte(`<html><body></body></html>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	service := NewPageTitleService()

	title, err := service.FetchTitle(context.Background(), server.URL+"/job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "Staff Engineer - Acme" {
		t.Errorf("expected %q, got %q", "Staff Engineer - Acme", title)
	}

	if _, err := service.FetchTitle(context.Background(), server.URL+"/missing"); err == nil {
		t.Error("expected error for 404 page")
	} else if !strings.Contains(err.Error(), "404") {
		t.Errorf("expected status code in error, got %v", err)
	}

	if _, err := service.FetchTitle(context.Background(), server.URL+"/empty"); err == nil {
		t.Error("expected error for page without title")
	}

	if _, err := service.FetchTitle(context.Background(), "  "); err == nil {
		t.Error("expected error for empty url")
	}
}
