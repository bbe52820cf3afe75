package topics

// Renderer turns a topic file into terminal text. format is the file
// extension, ".md" or ".txt" for the embedded topics.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim. It is used when no renderer is
// configured and by tests that compare exact output.
type PlainRenderer struct{}

// Render implements Renderer
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
