package mdtree

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	// HeadingLevel is the level (1-6) for KindHeading.
	HeadingLevel int

	// List holds list attributes for KindList.
	List *ListAttrs

	// Code holds code block attributes for KindCodeBlock.
	Code *CodeAttrs
}

// ListAttrs holds attributes for list nodes.
type ListAttrs struct {
	// Ordered is true for numbered lists.
	Ordered bool

	// Bullet is the bullet character for unordered lists ("-", "+", "*").
	Bullet string

	// Start is the first number of an ordered list.
	Start int
}

// CodeAttrs holds attributes for code block nodes.
type CodeAttrs struct {
	// Info is the fence info string, usually a language tag.
	Info string

	// DetectedLang is filled by content classification when Info is empty.
	DetectedLang string

	// Content is the literal code text, the block's editable payload.
	Content []byte

	// Indented is true for indented (non-fenced) code blocks.
	Indented bool
}

// Lang returns the effective language tag: the explicit info string when
// present, the detected language otherwise.
func (c *CodeAttrs) Lang() string {
	if c.Info != "" {
		return c.Info
	}
	return c.DetectedLang
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// Text is the content for KindText and KindCodeSpan.
	Text []byte

	// Link holds link attributes for KindLink and KindImage.
	Link *LinkAttrs

	// EmphasisLevel is 1 for emphasis, 2 for strong.
	EmphasisLevel int
}

// LinkAttrs holds attributes for link and image nodes.
type LinkAttrs struct {
	// Destination is the link URL.
	Destination string

	// Title is the optional title.
	Title string
}
