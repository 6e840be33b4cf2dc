package platform

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Timeout constants
const (
	DefaultTitleTimeout = 15 * time.Second
)

// Selectors tried in order when looking for a page title
const (
	OpenGraphTitleSelector = `meta[property="og:title"]`
	TwitterTitleSelector   = `meta[name="twitter:title"]`
	TitleSelector          = "title"
	HeadingSelector        = "h1"
)

// TitleUserAgent is sent with title requests; some job boards reject the Go default
const TitleUserAgent = "Mozilla/5.0 (compatible; jobpdf/1.0)"

// PageTitleService fetches a web page and extracts a human title for it
type PageTitleService struct {
	client  *http.Client
	timeout time.Duration
}

// NewPageTitleService creates a new title service
func NewPageTitleService() *PageTitleService {
	return &PageTitleService{
		client:  &http.Client{},
		timeout: DefaultTitleTimeout,
	}
}

// SetTimeout sets the timeout for title lookups
func (p *PageTitleService) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// FetchTitle downloads url and returns its best available title
func (p *PageTitleService) FetchTitle(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", fmt.Errorf("url is empty")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", TitleUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := ExtractTitle(doc)
	if title == "" {
		return "", fmt.Errorf("page has no title: %s", url)
	}
	return title, nil
}

// ExtractTitle returns og:title, twitter:title, <title> or the first <h1>, whichever is found first
func ExtractTitle(doc *goquery.Document) string {
	for _, sel := range []string{OpenGraphTitleSelector, TwitterTitleSelector} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if title := cleanTitle(content); title != "" {
				return title
			}
		}
	}

	for _, sel := range []string{TitleSelector, HeadingSelector} {
		if title := cleanTitle(doc.Find(sel).First().Text()); title != "" {
			return title
		}
	}

	return ""
}

// cleanTitle collapses whitespace runs into single spaces
func cleanTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
