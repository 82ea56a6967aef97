package render

// Options describe per-request data renderers can use to customise
// their output without touching the assembly pipeline.
type Options struct {
	// Watermark text stamped across every page. Empty disables it.
	Watermark string
	// Draft renders the on-screen preview variant instead of the final
	// print chrome.
	Draft bool
}
