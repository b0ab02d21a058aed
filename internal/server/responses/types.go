// Package responses defines API response types used by the docsite HTTP handlers.
package responses

import (
	"time"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/history"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/search"
	"git.home.luguber.info/inful/docsite/internal/toc"
)

// HealthResponse represents the health check API response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Uptime    float64   `json:"uptime"`
}

// SearchResponse wraps the results of one query.
type SearchResponse struct {
	Results []search.Result `json:"results"`
}

// TreeResponse is the full navigation tree.
type TreeResponse struct {
	Sections []nav.Section `json:"sections"`
}

// PageLink points at a neighbouring page.
type PageLink struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// PageResponse is everything needed to render one documentation page.
type PageResponse struct {
	Slug        []string                `json:"slug"`
	Href        string                  `json:"href"`
	Frontmatter frontmatter.Frontmatter `json:"frontmatter"`
	HTML        string                  `json:"html"`
	TOC         []toc.Entry             `json:"toc"`
	Breadcrumbs []nav.Crumb             `json:"breadcrumbs"`
	Prev        *PageLink               `json:"prev,omitempty"`
	Next        *PageLink               `json:"next,omitempty"`
	EditPath    string                  `json:"editPath"`
	LastUpdated *history.Info           `json:"lastUpdated,omitempty"`
	Fingerprint string                  `json:"fingerprint"`
}

// LinkTo converts a navigation page to a PageLink; nil stays nil.
func LinkTo(p *nav.Page) *PageLink {
	if p == nil {
		return nil
	}
	return &PageLink{Title: p.Title, Href: p.Href}
}
