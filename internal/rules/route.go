package rules

// Disposition is what happens to a file once its rules are applied.
type Disposition string

const (
	// Unhandled files match no rule that processes them.
	Unhandled Disposition = "unhandled"
	// Processed files run through a loader chain into the bundle.
	Processed Disposition = "chain"
	// Inlined files are embedded as data URLs.
	Inlined Disposition = "inline"
	// Emitted files are written as separate assets.
	Emitted Disposition = "emit"
)

// Routing describes how the bundler would treat one file.
type Routing struct {
	// Rules are the names of the applied rules in evaluation order.
	Rules []string
	// Chain is the combined loader chain in declaration order.
	Chain       Chain
	Disposition Disposition
}

// Route evaluates the set for a file of size bytes the way the bundler does:
// every matching non-exclusive rule applies and only the first matching
// exclusive rule does. Rules without loaders do not affect routing.
func (rs RuleSet) Route(path string, size int64) Routing {
	var out Routing
	out.Disposition = Unhandled

	for _, r := range rs.Rules {
		if r.Exclusive || len(r.Use) == 0 || !r.Matches(path) {
			continue
		}
		out.Rules = append(out.Rules, r.Name)
		out.Chain = append(out.Chain, r.Use...)
		out.Disposition = Processed
	}

	for _, r := range rs.Rules {
		if !r.Exclusive || !r.Matches(path) {
			continue
		}
		out.Rules = append(out.Rules, r.Name)
		out.Chain = append(out.Chain, r.Use...)
		out.Disposition = disposition(r.Use, size)
		break
	}
	return out
}

func disposition(c Chain, size int64) Disposition {
	if len(c) != 1 {
		return Processed
	}
	switch c[0].Loader {
	case URLLoader:
		if size <= inlineLimit(c[0]) {
			return Inlined
		}
		return Emitted
	case FileLoader:
		return Emitted
	default:
		return Processed
	}
}

func inlineLimit(step LoaderStep) int64 {
	switch v := step.Options["limit"].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return InlineLimitBytes
	}
}
