package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultCalendarURL is the tracked team's season calendar.
	DefaultCalendarURL = "https://www.khl.ru/calendar/1288/00/29/"

	// DefaultTimeout bounds the single page request.
	DefaultTimeout = 30 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"
	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	languageHeader = "ru-RU,ru;q=0.9,en-US;q=0.8,en;q=0.7"
)

// Scraper fetches the calendar page over HTTP.
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for url with the given request timeout. Empty or
// zero arguments fall back to the defaults.
func New(url string, timeout time.Duration) *Scraper {
	if url == "" {
		url = DefaultCalendarURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scraper{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// URL returns the calendar URL the scraper fetches.
func (s *Scraper) URL() string { return s.url }

// FetchPage downloads the calendar page and returns its body as UTF-8 text.
func (s *Scraper) FetchPage() (string, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", languageHeader)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}
