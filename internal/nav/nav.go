// Package nav builds the ordered section/page tree shown in site navigation.
package nav

import (
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"git.home.luguber.info/inful/docsite/internal/content"
	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/iter"
)

// DefaultBasePath prefixes every page href.
const DefaultBasePath = "/docs"

// unknownPriority places sections missing from the configured order after all known ones.
const unknownPriority = 999

// Page is one navigable document.
type Page struct {
	Slug        []string           `json:"slug"`
	Href        string             `json:"href"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Status      frontmatter.Status `json:"status,omitempty"`
	Order       int                `json:"order"`
}

// Section groups the pages of one content directory.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Pages []Page `json:"pages"`
}

// Crumb is one breadcrumb step. Href is empty for the current page.
type Crumb struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// Builder assembles the navigation tree from a content store.
type Builder struct {
	store    content.Store
	order    []string
	labels   map[string]string
	basePath string
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Builder.
type Option func(*Builder)

// WithSectionOrder sets the priority list of known section ids.
func WithSectionOrder(ids []string) Option {
	return func(b *Builder) { b.order = slices.Clone(ids) }
}

// WithLabels sets display labels keyed by section id.
func WithLabels(labels map[string]string) Option {
	return func(b *Builder) {
		b.labels = make(map[string]string, len(labels))
		for k, v := range labels {
			b.labels[k] = v
		}
	}
}

// WithBasePath sets the href prefix for pages.
func WithBasePath(base string) Option {
	return func(b *Builder) {
		if base != "" {
			b.basePath = "/" + strings.Trim(base, "/")
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.recorder = r
		}
	}
}

// NewBuilder creates a Builder reading from store.
func NewBuilder(store content.Store, opts ...Option) *Builder {
	b := &Builder{
		store:    store,
		labels:   map[string]string{},
		basePath: DefaultBasePath,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BasePath returns the href prefix.
func (b *Builder) BasePath() string { return b.basePath }

// Label returns the configured label for a section id, or the id itself.
func (b *Builder) Label(id string) string {
	if label, ok := b.labels[id]; ok && label != "" {
		return label
	}
	return id
}

// Href returns the page URL for slug.
func (b *Builder) Href(slug []string) string {
	return b.basePath + "/" + strings.Join(slug, "/")
}

// BuildTree reads every section and page from the store and returns them in
// navigation order. Only a failure to list the sections is returned; a
// section whose pages cannot be listed renders empty.
func (b *Builder) BuildTree() ([]Section, error) {
	start := time.Now()

	ids, err := b.store.ListSections()
	if err != nil {
		return nil, err
	}
	ids = b.orderSections(ids)

	tree := iter.Map(ids, func(id *string) Section {
		return b.buildSection(*id)
	})

	b.recorder.ObserveTreeBuild(time.Since(start), len(tree))
	return tree, nil
}

func (b *Builder) buildSection(id string) Section {
	section := Section{ID: id, Label: b.Label(id), Pages: []Page{}}

	files, err := b.store.ListPages(id)
	if err != nil {
		b.logger.Warn("Section pages could not be listed", logfields.Section(id), logfields.Error(err))
		return section
	}

	pages := lo.Map(files, func(f content.ContentFile, _ int) Page {
		slug := f.Slug()
		return Page{
			Slug:        slug,
			Href:        b.Href(slug),
			Title:       f.Frontmatter.Title,
			Description: f.Frontmatter.Description,
			Status:      f.Frontmatter.Status,
			Order:       f.Frontmatter.Order,
		}
	})
	sort.SliceStable(pages, func(i, j int) bool {
		return pages[i].Order < pages[j].Order
	})
	section.Pages = pages
	return section
}

// orderSections sorts ids by configured priority. Ids outside the priority
// list keep their scan order after all known ones.
func (b *Builder) orderSections(ids []string) []string {
	out := slices.Clone(ids)
	priority := func(id string) int {
		if i := lo.IndexOf(b.order, id); i >= 0 {
			return i
		}
		return unknownPriority
	}
	sort.SliceStable(out, func(i, j int) bool {
		return priority(out[i]) < priority(out[j])
	})
	return out
}

// FlattenPages concatenates the pages of every section in tree order. This is
// the sequence prev/next links follow.
func FlattenPages(tree []Section) []Page {
	return lo.FlatMap(tree, func(s Section, _ int) []Page { return s.Pages })
}

// Neighbors returns the pages before and after slug in pages. found is false
// when slug is not in pages.
func Neighbors(pages []Page, slug []string) (prev, next *Page, found bool) {
	i := slices.IndexFunc(pages, func(p Page) bool { return slices.Equal(p.Slug, slug) })
	if i < 0 {
		return nil, nil, false
	}
	if i > 0 {
		prev = &pages[i-1]
	}
	if i < len(pages)-1 {
		next = &pages[i+1]
	}
	return prev, next, true
}

// Breadcrumbs returns the trail from the docs root to the page titled title.
// The root crumb links to the first page of the tree.
func (b *Builder) Breadcrumbs(tree []Section, slug []string, title string) []Crumb {
	root := Crumb{Label: "Docs", Href: b.basePath}
	if first := FlattenPages(tree); len(first) > 0 {
		root.Href = first[0].Href
	}

	crumbs := []Crumb{root}
	if len(slug) > 1 {
		sectionID := slug[len(slug)-2]
		label := b.Label(sectionID)
		if s, ok := lo.Find(tree, func(s Section) bool { return s.ID == sectionID }); ok {
			label = s.Label
		}
		crumbs = append(crumbs, Crumb{Label: label})
	}
	return append(crumbs, Crumb{Label: title})
}
