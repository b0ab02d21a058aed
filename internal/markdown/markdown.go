// Package markdown renders content bodies to HTML and inspects their links.
package markdown

import (
	"bytes"
	"sort"

	"git.home.luguber.info/inful/docsite/internal/toc"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Options controls rendering.
type Options struct {
	// Unsafe passes raw HTML in the body through to the output.
	Unsafe bool
}

// Renderer converts Markdown bodies to HTML. Heading ids use the same anchor
// rule as the table of contents so in-page links resolve.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds a GitHub-flavoured renderer.
func NewRenderer(opts Options) *Renderer {
	var rendererOpts []goldmark.Option
	if opts.Unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}, rendererOpts...)...)
	return &Renderer{md: md}
}

// Render converts body to HTML.
func (r *Renderer) Render(body []byte) (string, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(anchorIDs{}))
	if err := r.md.Convert(body, &buf, parser.WithContext(ctx)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// anchorIDs implements parser.IDs with the table of contents anchor rule.
// Duplicate headings share an id and an empty anchor stays empty.
type anchorIDs struct{}

func (anchorIDs) Generate(value []byte, _ gmast.NodeKind) []byte {
	return []byte(toc.Anchor(string(value)))
}

func (anchorIDs) Put([]byte) {}

// ExtractLinks parses a Markdown body and extracts link-like constructs.
//
// This is an analysis API; it does not attempt to re-render Markdown.
func ExtractLinks(body []byte) []Link {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			// Reference-style links arrive here already resolved.
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})

	// Reference definitions live in the parse context, not the AST.
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindReferenceDefinition, Destination: string(ref.Destination())})
	}

	return links
}
