package commands

import (
	"fmt"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/lint"
	"github.com/fatih/color"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	p := newPipeline(cfg, g.logger(), nil)

	result, err := lint.NewLinter(p.store, &lint.Config{
		Quiet:    c.Quiet,
		Labels:   cfg.SectionLabels(),
		BasePath: cfg.Content.BasePath,
	}).Lint()
	if err != nil {
		return err
	}

	formatter := lint.NewFormatter(c.Format, !color.NoColor)
	if err := formatter.Format(stdout, result, cfg.Content.Root); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if result.HasErrors() {
		return derrors.ContentError("content has lint errors").
			WithContext("errors", result.ErrorCount()).
			Build()
	}
	return nil
}
