package commands

import (
	"encoding/json"
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/server/responses"
	"github.com/jedib0t/go-pretty/v6/table"
)

// SearchCmd implements the 'search' command.
type SearchCmd struct {
	Query string `arg:"" help:"Text to look for (at least two characters)"`
	JSON  bool   `help:"Print results as JSON"`
}

func (s *SearchCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	results := newPipeline(cfg, g.logger(), nil).search.Search(s.Query)

	if s.JSON {
		return json.NewEncoder(stdout).Encode(responses.SearchResponse{Results: results})
	}

	if len(results) == 0 {
		_, err := fmt.Fprintln(stdout, "No results.")
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(stdout)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Title", "Href", "Description"})
	for i, r := range results {
		tw.AppendRow(table.Row{i + 1, r.Title, r.Href, r.Description})
	}
	tw.Render()
	return nil
}
