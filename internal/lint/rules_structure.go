package lint

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/content"
	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/markdown"
	"git.home.luguber.info/inful/docsite/internal/toc"
	"github.com/samber/lo"
)

// AnchorCollisionRule reports headings that produce the same anchor on one
// page. Only the first of them is reachable by fragment.
type AnchorCollisionRule struct{}

func (r *AnchorCollisionRule) Name() string { return "toc-anchor-collision" }

func (r *AnchorCollisionRule) Check(site *Site) []Issue {
	var issues []Issue
	for _, sec := range site.Sections {
		for _, f := range sec.Files {
			entries := toc.Extract(f.Body)
			groups := lo.GroupBy(entries, func(e toc.Entry) string { return e.ID })
			for _, e := range lo.UniqBy(entries, func(e toc.Entry) string { return e.ID }) {
				dup := groups[e.ID]
				if len(dup) < 2 {
					continue
				}
				texts := lo.Map(dup, func(d toc.Entry, _ int) string { return fmt.Sprintf("%q", d.Text) })
				issues = append(issues, Issue{
					FilePath:    site.Path(f),
					Severity:    SeverityWarning,
					Rule:        r.Name(),
					Message:     fmt.Sprintf("%d headings share the anchor #%s", len(dup), e.ID),
					Explanation: "Headings: " + strings.Join(texts, ", "),
					Fix:         "Reword one of the headings",
				})
			}
		}
	}
	return issues
}

// BrokenLinkRule reports internal links to pages or anchors that do not exist.
type BrokenLinkRule struct{}

func (r *BrokenLinkRule) Name() string { return "link-broken" }

func (r *BrokenLinkRule) Check(site *Site) []Issue {
	var issues []Issue
	for _, sec := range site.Sections {
		for _, f := range sec.Files {
			for _, link := range markdown.ExtractLinks([]byte(f.Body)) {
				if msg := r.checkLink(site, f.Body, link); msg != "" {
					issues = append(issues, Issue{
						FilePath: site.Path(f),
						Severity: SeverityWarning,
						Rule:     r.Name(),
						Message:  msg,
						Fix:      "Point the link at an existing page and heading",
					})
				}
			}
		}
	}
	return issues
}

func (r *BrokenLinkRule) checkLink(site *Site, body string, link markdown.Link) string {
	var (
		fragment string
		target   string
	)
	switch {
	case strings.HasPrefix(link.Destination, "#"):
		fragment = link.Destination[1:]
		target = body
	case link.Internal(site.BasePath):
		slug, frag := link.Target(site.BasePath)
		page, ok := site.Lookup(slug)
		if !ok {
			return fmt.Sprintf("Link to missing page %s", link.Destination)
		}
		fragment = frag
		target = page.Body
	default:
		return ""
	}

	if fragment == "" {
		return ""
	}
	if !lo.ContainsBy(toc.Extract(target), func(e toc.Entry) bool { return e.ID == fragment }) {
		return fmt.Sprintf("Link to missing heading %s", link.Destination)
	}
	return ""
}

// OrderDuplicateRule notes pages in one section sharing an explicit order.
// Their relative position then depends on file names.
type OrderDuplicateRule struct{}

func (r *OrderDuplicateRule) Name() string { return "order-duplicate" }

func (r *OrderDuplicateRule) Check(site *Site) []Issue {
	var issues []Issue
	for _, sec := range site.Sections {
		explicit := lo.Filter(sec.Files, func(f content.ContentFile, _ int) bool {
			return f.Frontmatter.Order != frontmatter.DefaultOrder
		})
		groups := lo.GroupBy(explicit, func(f content.ContentFile) int { return f.Frontmatter.Order })
		for _, f := range explicit {
			peers := groups[f.Frontmatter.Order]
			if len(peers) < 2 {
				continue
			}
			others := lo.FilterMap(peers, func(p content.ContentFile, _ int) (string, bool) {
				return p.PageID, p.PageID != f.PageID
			})
			issues = append(issues, Issue{
				FilePath: site.Path(f),
				Severity: SeverityInfo,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("order %d is shared with %s", f.Frontmatter.Order, strings.Join(others, ", ")),
			})
		}
	}
	return issues
}

// SectionUnlabeledRule notes sections without a configured label. They are
// listed after all configured sections under their raw directory name.
type SectionUnlabeledRule struct{}

func (r *SectionUnlabeledRule) Name() string { return "section-unlabeled" }

func (r *SectionUnlabeledRule) Check(site *Site) []Issue {
	var issues []Issue
	for _, sec := range site.Sections {
		if sec.Labeled {
			continue
		}
		issues = append(issues, Issue{
			FilePath: sec.ID + "/",
			Severity: SeverityInfo,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("section %q has no configured label", sec.ID),
			Fix:      "Add it under 'sections' in the configuration",
		})
	}
	return issues
}
