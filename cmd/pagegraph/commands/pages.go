package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/pagegraph/internal/pages"
)

// PagesCmd implements the 'pages' command.
type PagesCmd struct{}

func (p *PagesCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	explicit := make([]pages.Descriptor, 0, len(cfg.Pages))
	for _, pg := range cfg.Pages {
		explicit = append(explicit, pages.Descriptor{Name: pg.Name, Entry: pg.Entry, Template: pg.Template, Filename: pg.Filename})
	}
	found, err := pages.Discover(pages.Options{
		Explicit:        explicit,
		Root:            cfg.ViewsPath(),
		Extensions:      cfg.EntryExtensions,
		DefaultTemplate: cfg.DefaultTemplate,
	})
	if err != nil {
		return err
	}
	if _, err := pages.ResolveEntries(found); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(g.stdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tENTRY\tTEMPLATE\tFILENAME")
	for _, d := range found {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Name, d.Entry, d.Template, d.Filename)
	}
	return tw.Flush()
}
