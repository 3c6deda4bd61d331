// Package git reads repository metadata used to stamp compiled build graphs.
package git
