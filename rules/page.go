package rules

import (
	"net/url"
	"strings"
	"sync"

	"github.com/seo-optimizer/content-analyzer/content"
	"github.com/seo-optimizer/content-analyzer/readability"
)

// Page is the input of a rule run: parsed content plus the metadata supplied with it
type Page struct {
	Content     *content.ParsedContent
	Title       string
	Description string
	Keywords    []string
	Language    string
	URL         string

	once        sync.Once
	readability *readability.Result
}

// NewPage builds a page; a nil content is replaced by the empty result
func NewPage(c *content.ParsedContent, title, description string, keywords []string, language, pageURL string) *Page {
	if c == nil {
		c = content.Empty()
	}
	return &Page{
		Content:     c,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Keywords:    keywords,
		Language:    readability.NormalizeLanguage(language),
		URL:         strings.TrimSpace(pageURL),
	}
}

// WithReadability attaches an already computed readability result so the rules reuse it
func (p *Page) WithReadability(r *readability.Result) *Page {
	p.readability = r
	return p
}

// Readability returns the page's readability result, computing it on first use
func (p *Page) Readability() *readability.Result {
	p.once.Do(func() {
		if p.readability == nil {
			p.readability = readability.AnalyzeParsed(p.content(), readability.Options{Language: p.Language})
		}
	})
	return p.readability
}

func (p *Page) content() *content.ParsedContent {
	if p.Content == nil {
		return content.Empty()
	}
	return p.Content
}

// PrimaryKeyword returns the first supplied keyword, or "" when none was given
func (p *Page) PrimaryKeyword() string {
	for _, kw := range p.Keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			return kw
		}
	}
	return ""
}

// FirstParagraph returns the first paragraph of the page, falling back to the first text block
func (p *Page) FirstParagraph() string {
	c := p.content()
	if len(c.Paragraphs) > 0 {
		return c.Paragraphs[0]
	}
	if blocks := readability.SplitParagraphs(c.Text); len(blocks) > 0 {
		return blocks[0]
	}
	return ""
}

// parsedURL returns the page URL when it is absolute
func (p *Page) parsedURL() (*url.URL, bool) {
	if p.URL == "" {
		return nil, false
	}
	u, err := url.Parse(p.URL)
	if err != nil || u.Host == "" {
		return nil, false
	}
	return u, true
}
