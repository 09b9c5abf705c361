package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

const defaultArticleBase = "http://localhost/"

// stripPolicy removes every tag; AddSpaceWhenStrippingTag keeps adjacent words apart
var stripPolicy = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// Article is the main content of a page as found by go-readability
type Article struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// ExtractArticle isolates the main article of a page, dropping navigation, sidebars and footers.
// pageURL resolves relative links; it may be empty.
func ExtractArticle(rawHTML, pageURL string) (*Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, fmt.Errorf("extract article: empty document")
	}

	if pageURL == "" {
		pageURL = defaultArticleBase
	}
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract article: invalid page URL %q: %w", pageURL, err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}

	return &Article{
		Title:   strings.TrimSpace(article.Title),
		Excerpt: strings.TrimSpace(article.Excerpt),
		Text:    normalizeText(article.TextContent),
		HTML:    article.Content,
	}, nil
}

// StripTags removes all markup and returns whitespace-normalized text.
// Used when the structural parse of a fragment yields no text.
func StripTags(raw string) string {
	if raw == "" {
		return ""
	}
	stripped := stripPolicy.Sanitize(raw)
	return normalizeText(html.UnescapeString(stripped))
}
