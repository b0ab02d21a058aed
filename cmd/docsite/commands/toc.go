package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/toc"
)

// TocCmd implements the 'toc' command.
type TocCmd struct {
	Section string `arg:"" help:"Section id"`
	Page    string `arg:"" help:"Page id"`
	JSON    bool   `help:"Print entries as JSON"`
}

func (c *TocCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	file, err := newPipeline(cfg, g.logger(), nil).store.GetPage([]string{c.Section, c.Page})
	if err != nil {
		return err
	}

	entries := toc.Extract(file.Body)
	if c.JSON {
		return json.NewEncoder(stdout).Encode(entries)
	}
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Level-2)
		if _, err := fmt.Fprintf(stdout, "%s- %s (#%s)\n", indent, e.Text, e.ID); err != nil {
			return err
		}
	}
	return nil
}
