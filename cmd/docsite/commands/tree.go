package commands

import (
	"encoding/json"
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/server/responses"
	"github.com/xlab/treeprint"
)

// TreeCmd implements the 'tree' command.
type TreeCmd struct {
	JSON bool `help:"Print the tree as JSON"`
}

func (t *TreeCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	p := newPipeline(cfg, g.logger(), nil)

	tree, err := p.builder.BuildTree()
	if err != nil {
		return err
	}

	if t.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(responses.TreeResponse{Sections: tree})
	}

	out := treeprint.NewWithRoot(cfg.Content.BasePath)
	for _, section := range tree {
		branch := out.AddMetaBranch(len(section.Pages), section.Label)
		for _, page := range section.Pages {
			label := page.Title
			if page.Status != "" {
				label += " [" + string(page.Status) + "]"
			}
			branch.AddMetaNode(page.Order, label+"  "+page.Href)
		}
	}
	_, err = fmt.Fprint(stdout, out.String())
	return err
}
