package config

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of the graph-affecting configuration fields.
// Page order is significant (it is the entry order), so page records are hashed
// in declaration order. Callers should hash a defaulted configuration.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) { h.Write([]byte(strings.Join(parts, "="))); h.Write([]byte{0}) }

	w("source_dir", c.SourceDir)
	w("views_dir", c.ViewsDir)
	w("entry_extensions", strings.Join(c.EntryExtensions, ","))
	w("default_template", c.DefaultTemplate)
	w("output_dir", c.OutputDir)
	w("content_base", c.ContentBase)
	w("mode", c.Mode)
	w("production_source_maps", strconv.FormatBool(c.ProductionSourceMaps))
	for i, p := range c.Pages {
		w("pages."+strconv.Itoa(i), p.Name, p.Entry, p.Template, p.Filename)
	}
	w("env_files", strings.Join(c.EnvFiles, ","))
	w("stamp_revision", strconv.FormatBool(c.StampRevision))
	w("dev_server.host", c.DevServer.Host)
	w("dev_server.open", strconv.FormatBool(c.DevServer.OpenOnStart()))
	return hex.EncodeToString(h.Sum(nil))
}
