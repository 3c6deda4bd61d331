// Package netaddr picks a local address for the development server binding.
package netaddr

import (
	"fmt"
	"net"
)

// Fallback is returned when no non-loopback IPv4 address exists.
const Fallback = "localhost"

// Interface is the subset of an interface the resolver inspects.
type Interface struct {
	Name  string
	Up    bool
	Addrs []net.Addr
}

// InterfaceSource lists network interfaces.
type InterfaceSource interface {
	Interfaces() ([]Interface, error)
}

// SystemInterfaces reads interfaces from the host.
type SystemInterfaces struct{}

// Interfaces implements InterfaceSource.
func (SystemInterfaces) Interfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}
	out := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			return nil, fmt.Errorf("list addresses of %s: %w", iface.Name, err)
		}
		out = append(out, Interface{
			Name:  iface.Name,
			Up:    iface.Flags&net.FlagUp != 0,
			Addrs: addrs,
		})
	}
	return out, nil
}

// Resolver picks the first non-loopback IPv4 address in interface order.
type Resolver struct {
	source InterfaceSource
}

// NewResolver returns a Resolver reading from source, or from the host when
// source is nil.
func NewResolver(source InterfaceSource) *Resolver {
	if source == nil {
		source = SystemInterfaces{}
	}
	return &Resolver{source: source}
}

// Lookup returns the first non-loopback IPv4 address of an interface that is
// up. ok is false when there is none.
func (r *Resolver) Lookup() (addr string, ok bool, err error) {
	ifaces, err := r.source.Interfaces()
	if err != nil {
		return "", false, err
	}
	for _, iface := range ifaces {
		if !iface.Up {
			continue
		}
		for _, a := range iface.Addrs {
			ip := addrIP(a)
			if ip == nil || ip.IsLoopback() {
				continue
			}
			if v4 := ip.To4(); v4 != nil {
				return v4.String(), true, nil
			}
		}
	}
	return "", false, nil
}

// Host returns Lookup's address, or Fallback when none is found or the
// interfaces cannot be listed.
func (r *Resolver) Host() string {
	addr, ok, err := r.Lookup()
	if err != nil || !ok {
		return Fallback
	}
	return addr
}

func addrIP(a net.Addr) net.IP {
	switch v := a.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	default:
		return nil
	}
}
