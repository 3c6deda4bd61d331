package commands

import (
	"fmt"

	"git.home.luguber.info/inful/pagegraph/internal/netaddr"
)

// interfaceSource is replaced in tests.
var interfaceSource netaddr.InterfaceSource = netaddr.SystemInterfaces{}

// AddressCmd implements the 'address' command.
type AddressCmd struct{}

func (a *AddressCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	host := cfg.DevServer.Host
	if host == "" {
		host = netaddr.NewResolver(interfaceSource).Host()
	}
	_, err = fmt.Fprintln(g.stdout(), host)
	return err
}
