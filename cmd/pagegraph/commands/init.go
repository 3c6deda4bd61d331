package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"git.home.luguber.info/inful/pagegraph/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Output directory for generated config file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	// An explicit output directory gets the default file name.
	if i.Output != "" {
		return RunInit(g.stdout(), filepath.Join(i.Output, config.DefaultFileName), i.Force)
	}
	if root != nil && root.Config != "" {
		return RunInit(g.stdout(), root.Config, i.Force)
	}
	return RunInit(g.stdout(), config.DefaultFileName, i.Force)
}

func RunInit(out io.Writer, configPath string, force bool) error {
	_, _ = fmt.Fprintf(out, "Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		_, _ = fmt.Fprintln(out, "Initialization failed")
		return err
	}
	_, _ = fmt.Fprintln(out, "initialized successfully")
	return nil
}
