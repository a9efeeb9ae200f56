package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// HTMLFeedConfig configures an HTMLFeed.
type HTMLFeedConfig struct {
	// ArchiveURL is the meeting-archive listing page.
	ArchiveURL string

	// ItemSelector selects one listing row per document.
	// Default: "a.meeting-item".
	ItemSelector string

	// DateAttr is the attribute on the selected element carrying the
	// publication date. Default: "data-date", parsed as 2006-01-02.
	DateAttr string

	// RateLimit caps requests per second against the archive host.
	RateLimit float64

	Timeout time.Duration
}

// HTMLFeed implements DiscoveryFeed by scraping a meeting-archive HTML page.
// Each listing row links to a recording page; the link's last path element is
// used as the stable external id.
type HTMLFeed struct {
	config  HTMLFeedConfig
	client  *http.Client
	limiter *rate.Limiter
}

var _ DiscoveryFeed = (*HTMLFeed)(nil)

// NewHTMLFeed creates a discovery feed over an HTML archive page.
func NewHTMLFeed(config HTMLFeedConfig) (*HTMLFeed, error) {
	if config.ArchiveURL == "" {
		return nil, fmt.Errorf("archive URL is required")
	}
	if config.ItemSelector == "" {
		config.ItemSelector = "a.meeting-item"
	}
	if config.DateAttr == "" {
		config.DateAttr = "data-date"
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2 // 2 requests per second by default
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	if _, err := url.Parse(config.ArchiveURL); err != nil {
		return nil, fmt.Errorf("invalid archive URL: %w", err)
	}

	return &HTMLFeed{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}, nil
}

// ListRecent fetches and parses the archive page.
func (f *HTMLFeed) ListRecent(ctx context.Context) ([]Item, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.config.ArchiveURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("archive page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	return f.parseItems(doc), nil
}

func (f *HTMLFeed) parseItems(doc *goquery.Document) []Item {
	var items []Item
	seen := make(map[string]bool)

	doc.Find(f.config.ItemSelector).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}

		abs := f.resolveURL(href)
		id := externalIDFromURL(abs)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true

		item := Item{
			ExternalId: id,
			Title:      strings.TrimSpace(sel.Text()),
			SourceUrl:  abs,
		}
		if raw, ok := sel.Attr(f.config.DateAttr); ok {
			if ts, err := time.Parse("2006-01-02", strings.TrimSpace(raw)); err == nil {
				item.PublishedAt = ts
			}
		}
		items = append(items, item)
	})

	return items
}

func (f *HTMLFeed) resolveURL(href string) string {
	base, err := url.Parse(f.config.ArchiveURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// externalIDFromURL extracts the last non-empty path element of a recording
// URL, which archive pages use as the stable video id.
func externalIDFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	// Query-param style ids (e.g. ?v=abc123) take precedence.
	if v := u.Query().Get("v"); v != "" {
		return v
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
