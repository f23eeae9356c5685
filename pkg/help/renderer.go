package help

// Renderer formats topic content for terminal display.
type Renderer interface {
	// Render takes raw topic content and returns what should be printed.
	Render(content string) string
}

// PlainRenderer is the default renderer that returns content as-is.
type PlainRenderer struct{}

// Render returns the content unchanged.
func (r *PlainRenderer) Render(content string) string {
	return content
}
