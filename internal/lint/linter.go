package lint

import (
	"log/slog"
	"sort"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/content"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Linter performs linting operations on a content store.
type Linter struct {
	store   content.Store
	cfg     *Config
	relPath func(slug []string) string
	rules   []Rule
	logger  *slog.Logger
}

// NewLinter creates a linter over store with every built-in rule enabled.
func NewLinter(store content.Store, cfg *Config) *Linter {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/docs"
	}

	relPath := func(slug []string) string { return strings.Join(slug, "/") }
	if fs, ok := store.(*content.FSStore); ok {
		relPath = fs.RelPath
	}

	return &Linter{
		store:   store,
		cfg:     cfg,
		relPath: relPath,
		logger:  slog.Default(),
		rules: []Rule{
			&FrontmatterMalformedRule{},
			&TitleMissingRule{},
			&FieldInvalidRule{},
			&AnchorCollisionRule{},
			&BrokenLinkRule{},
			&OrderDuplicateRule{},
			&SectionUnlabeledRule{},
		},
	}
}

// Rules returns the enabled rules.
func (l *Linter) Rules() []Rule { return l.rules }

// Lint scans every section and applies all rules. Issues are ordered by file
// path, then by severity (most severe first).
func (l *Linter) Lint() (*Result, error) {
	site, err := l.snapshot()
	if err != nil {
		return nil, err
	}

	result := &Result{Issues: []Issue{}}
	for _, sec := range site.Sections {
		result.FilesTotal += len(sec.Files)
	}

	for _, rule := range l.rules {
		for _, issue := range rule.Check(site) {
			if l.cfg.Quiet && issue.Severity != SeverityError {
				continue
			}
			result.Issues = append(result.Issues, issue)
		}
	}

	sort.SliceStable(result.Issues, func(i, j int) bool {
		a, b := result.Issues[i], result.Issues[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		return a.Severity > b.Severity
	})

	l.logger.Debug("Lint completed",
		logfields.Count(result.FilesTotal),
		slog.Int("issues", len(result.Issues)))
	return result, nil
}

func (l *Linter) snapshot() (*Site, error) {
	ids, err := l.store.ListSections()
	if err != nil {
		return nil, err
	}

	site := &Site{
		BasePath: l.cfg.BasePath,
		relPath:  l.relPath,
		pages:    map[string]content.ContentFile{},
	}
	for _, id := range ids {
		files, err := l.store.ListPages(id)
		if err != nil {
			l.logger.Warn("Skipping section", logfields.Section(id), logfields.Error(err))
			continue
		}
		_, labeled := l.cfg.Labels[id]
		site.Sections = append(site.Sections, SiteSection{ID: id, Labeled: labeled, Files: files})
		for _, f := range files {
			site.pages[f.SectionID+"/"+f.PageID] = f
		}
	}
	return site, nil
}
