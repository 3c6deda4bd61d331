package graph

// Output naming templates.
const (
	hashedScript      = "static/js/[name].bundle.[contenthash:8].js"
	hashedScriptChunk = "static/js/chunk.[contenthash:8].js"
	plainScript       = "static/js/[name].bundle.js"
	plainScriptChunk  = "static/js/[name].chunk.js"

	// Stylesheet names are the same in both modes; the extraction plugin
	// only receives content in production.
	styleFile  = "static/css/[contenthash:8].css"
	styleChunk = "static/css/[contenthash:8].chunk.css"
)

// ScriptNames returns the entry and chunk script templates.
func ScriptNames(hashing bool) (filename, chunk string) {
	if hashing {
		return hashedScript, hashedScriptChunk
	}
	return plainScript, plainScriptChunk
}
