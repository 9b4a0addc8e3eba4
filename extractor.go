package pinnedref

// ExtractResult holds the main content extracted from a fetched page.
type ExtractResult struct {
	// Title is the page title taken from metadata.
	Title string

	// ContentHTML is the article body as HTML. Boilerplate (navigation,
	// footers, comments) has been removed but paragraph, heading and list
	// structure is preserved so blocks can be extracted from it.
	ContentHTML string
}

// Extractor extracts the article body from a full HTML page.
type Extractor interface {
	// Extract processes a fetched page and returns its main content.
	Extract(html string) (*ExtractResult, error)
}
