// Package content defines the parsed-content shape shared by the scoring,
// readability and recommendation engines, and the HTML parser producing it.
package content

// LinkType classifies an anchor by its destination
type LinkType string

const (
	LinkInternal LinkType = "internal"
	LinkExternal LinkType = "external"
	LinkEmail    LinkType = "email"
	LinkPhone    LinkType = "phone"
	LinkAnchor   LinkType = "anchor"
)

// Image is an <img> element
type Image struct {
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Title    string `json:"title"`
	HasAlt   bool   `json:"hasAlt"`
	HasTitle bool   `json:"hasTitle"`
}

// Link is an <a href> element
type Link struct {
	Href    string   `json:"href"`
	Text    string   `json:"text"`
	Rel     string   `json:"rel"`
	Type    LinkType `json:"type"`
	HasText bool     `json:"hasText"`
}

// MetaTags holds the document-level meta information. An empty string means the tag is absent.
type MetaTags struct {
	Viewport  string `json:"viewport"`
	Canonical string `json:"canonical"`
	Robots    string `json:"robots"`
	Charset   string `json:"charset"`
	Language  string `json:"language"`
}

// StructuralElements records which HTML5 landmark elements are present
type StructuralElements struct {
	HasNav        bool `json:"hasNav"`
	HasHeader     bool `json:"hasHeader"`
	HasFooter     bool `json:"hasFooter"`
	HasMain       bool `json:"hasMain"`
	HasArticle    bool `json:"hasArticle"`
	SemanticScore int  `json:"semanticScore"` // 0-5
}

// OpenGraph holds the og:* properties used for social previews
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ParsedContent is the structure every engine consumes
type ParsedContent struct {
	Text               string             `json:"text"`
	WordCount          int                `json:"wordCount"`
	CharacterCount     int                `json:"characterCount"`
	Headings           map[int][]string   `json:"headings"`
	Images             []Image            `json:"images"`
	Links              []Link             `json:"links"`
	Paragraphs         []string           `json:"paragraphs"`
	MetaTags           MetaTags           `json:"metaTags"`
	StructuralElements StructuralElements `json:"structuralElements"`

	HTMLTitle         string    `json:"htmlTitle"`
	MetaDescription   string    `json:"metaDescription"`
	OpenGraph         OpenGraph `json:"openGraph"`
	TwitterCard       string    `json:"twitterCard"`
	HasStructuredData bool      `json:"hasStructuredData"`
	PublishedDate     string    `json:"publishedDate"`
	HTMLLength        int       `json:"htmlLength"`
}

// Empty returns the canonical empty result: every collection is allocated and every heading level present
func Empty() *ParsedContent {
	headings := make(map[int][]string, 6)
	for level := 1; level <= 6; level++ {
		headings[level] = []string{}
	}
	return &ParsedContent{
		Headings:   headings,
		Images:     []Image{},
		Links:      []Link{},
		Paragraphs: []string{},
	}
}

// HeadingCount returns the number of headings at the given level
func (c *ParsedContent) HeadingCount(level int) int {
	return len(c.Headings[level])
}

// LinksOfType returns the links of one type in document order
func (c *ParsedContent) LinksOfType(t LinkType) []Link {
	var out []Link
	for _, l := range c.Links {
		if l.Type == t {
			out = append(out, l)
		}
	}
	return out
}

// ImagesMissingAlt counts images without meaningful alt text
func (c *ParsedContent) ImagesMissingAlt() int {
	missing := 0
	for _, img := range c.Images {
		if !img.HasAlt {
			missing++
		}
	}
	return missing
}
