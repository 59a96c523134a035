package mdast

// Alignment describes the declared column alignment of a table cell.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// String returns the HTML align attribute value, or "" for AlignNone.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}

// AlertKind identifies a GitHub-style blockquote alert.
type AlertKind string

const (
	AlertNone      AlertKind = ""
	AlertNote      AlertKind = "note"
	AlertTip       AlertKind = "tip"
	AlertImportant AlertKind = "important"
	AlertWarning   AlertKind = "warning"
	AlertCaution   AlertKind = "caution"
)

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	// HeadingLevel is the heading level (1-6) for NodeHeading.
	HeadingLevel int

	// HeadingID is the generated id attribute for NodeHeading, including
	// any configured prefix. Empty when heading IDs are disabled.
	HeadingID string

	// HeadingSlug is the unprefixed slug, used for the anchor href.
	HeadingSlug string

	// List holds list-specific attributes for NodeList.
	List *ListAttrs

	// CodeBlock holds code block attributes for NodeCodeBlock.
	CodeBlock *CodeBlockAttrs

	// Alert is the alert kind for NodeBlockquote, AlertNone for plain quotes.
	Alert AlertKind

	// Literal is the raw content for NodeHTMLBlock and NodeMathBlock.
	Literal []byte

	// Table holds table attributes for NodeTable.
	Table *TableAttrs

	// Cell holds cell attributes for NodeTableCell.
	Cell *TableCellAttrs
}

// ListAttrs holds attributes for list nodes.
type ListAttrs struct {
	// Ordered is true for ordered lists (1., 2., etc.).
	Ordered bool

	// Marker is the bullet character ('-', '+', '*') for unordered lists,
	// or the delimiter ('.' or ')') for ordered lists.
	Marker byte

	// StartNumber is the starting number for ordered lists.
	StartNumber int

	// Tight is true if this is a tight list (no blank lines between items).
	Tight bool
}

// CodeBlockAttrs holds attributes for code block nodes.
type CodeBlockAttrs struct {
	// Info is the info string (language identifier, etc.).
	Info string

	// Literal is the verbatim code content.
	Literal []byte
}

// TableAttrs holds attributes for table nodes.
type TableAttrs struct {
	// Alignments holds the declared alignment of each column.
	Alignments []Alignment
}

// TableCellAttrs holds attributes for table cell nodes.
type TableCellAttrs struct {
	// Alignment is the declared column alignment for this cell.
	Alignment Alignment

	// Header is true for cells inside the table header row.
	Header bool
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// Text holds the literal content for NodeText, NodeCodeSpan,
	// NodeMathInline, and NodeHTMLInline.
	Text []byte

	// Link holds link attributes for NodeLink and NodeImage.
	Link *LinkAttrs

	// Checked is the checkbox state for NodeTaskCheckbox.
	Checked bool
}

// LinkAttrs holds attributes for link and image nodes.
type LinkAttrs struct {
	// Destination is the link URL or image source.
	Destination string

	// Title is the optional link title.
	Title string

	// Auto is true for links produced by autolink rules rather than
	// written by the author. Renderers may decorate these differently.
	Auto bool
}

// NewBlockAttrs creates a new BlockAttrs with default values.
func NewBlockAttrs() *BlockAttrs {
	return &BlockAttrs{}
}

// NewInlineAttrs creates a new InlineAttrs with default values.
func NewInlineAttrs() *InlineAttrs {
	return &InlineAttrs{}
}

// WithHeadingLevel sets the heading level and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithHeadingLevel(level int) *BlockAttrs {
	a.HeadingLevel = level
	return a
}

// WithList sets list attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithList(attrs *ListAttrs) *BlockAttrs {
	a.List = attrs
	return a
}

// WithCodeBlock sets code block attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithCodeBlock(attrs *CodeBlockAttrs) *BlockAttrs {
	a.CodeBlock = attrs
	return a
}

// WithText sets the text content and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithText(text []byte) *InlineAttrs {
	a.Text = text
	return a
}

// WithLink sets link attributes and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithLink(attrs *LinkAttrs) *InlineAttrs {
	a.Link = attrs
	return a
}
