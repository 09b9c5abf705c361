package content

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/seo-optimizer/content-analyzer/logging"
)

var (
	inlineSpace = regexp.MustCompile(`[^\S\n]+`)
	extraBreaks = regexp.MustCompile(`\n{3,}`)
)

// elements whose text never reaches the readable text
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"svg": true, "iframe": true, "head": true, "object": true,
}

// elements that start a new block of text
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "main": true,
	"header": true, "footer": true, "nav": true, "aside": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "dl": true, "dt": true, "dd": true,
	"blockquote": true, "pre": true, "table": true, "tr": true,
	"figure": true, "figcaption": true, "form": true, "hr": true, "address": true,
}

// Parser turns raw HTML into ParsedContent. It is stateless and safe for concurrent use.
type Parser struct {
	logger logging.Logger
}

// NewParser creates a parser; a nil logger discards degradation messages
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Parser{logger: logger}
}

// Parse parses HTML without a base URL; absolute http(s) links are treated as external
func (p *Parser) Parse(rawHTML string) *ParsedContent {
	return p.ParseWithBase(rawHTML, "")
}

// ParseWithBase parses HTML, classifying links against baseURL's host.
// It never fails: unparseable input yields the empty result.
func (p *Parser) ParseWithBase(rawHTML, baseURL string) (result *ParsedContent) {
	if strings.TrimSpace(rawHTML) == "" {
		return Empty()
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Debug("HTML parse degraded to empty content", "panic", fmt.Sprint(r))
			result = Empty()
		}
	}()

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		p.logger.Debug("HTML parse failed", "error", err)
		return Empty()
	}

	var base *url.URL
	if baseURL != "" {
		if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
			base = u
		}
	}

	doc := goquery.NewDocumentFromNode(root)
	result = Empty()
	result.HTMLLength = len(rawHTML)

	var text strings.Builder
	for _, body := range doc.Find("body").Nodes {
		renderText(body, &text)
	}
	result.Text = normalizeText(text.String())
	result.WordCount = len(strings.Fields(result.Text))
	result.CharacterCount = utf8.RuneCountInString(result.Text)

	p.extractHeadings(doc, result)
	p.extractParagraphs(doc, result)
	p.extractImages(doc, result)
	p.extractLinks(doc, base, result)
	p.extractMeta(doc, result)
	p.extractStructure(doc, result)

	return result
}

func (p *Parser) extractHeadings(doc *goquery.Document, result *ParsedContent) {
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := collapse(s.Text())
		if text == "" {
			return
		}
		level := int(goquery.NodeName(s)[1] - '0')
		result.Headings[level] = append(result.Headings[level], text)
	})
}

func (p *Parser) extractParagraphs(doc *goquery.Document, result *ParsedContent) {
	doc.Find("body p").Each(func(_ int, s *goquery.Selection) {
		if text := collapse(s.Text()); text != "" {
			result.Paragraphs = append(result.Paragraphs, text)
		}
	})
}

func (p *Parser) extractImages(doc *goquery.Document, result *ParsedContent) {
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			src, _ = s.Attr("data-src")
		}
		alt, _ := s.Attr("alt")
		title, _ := s.Attr("title")
		alt = strings.TrimSpace(alt)
		title = strings.TrimSpace(title)

		result.Images = append(result.Images, Image{
			Src:      strings.TrimSpace(src),
			Alt:      alt,
			Title:    title,
			HasAlt:   alt != "",
			HasTitle: title != "",
		})
	})
}

func (p *Parser) extractLinks(doc *goquery.Document, base *url.URL, result *ParsedContent) {
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		rel, _ := s.Attr("rel")

		text := collapse(s.Text())
		if text == "" {
			// an image-only link still describes its target through alt text
			text = collapse(s.Find("img[alt]").AttrOr("alt", ""))
		}

		result.Links = append(result.Links, Link{
			Href:    href,
			Text:    text,
			Rel:     strings.ToLower(strings.TrimSpace(rel)),
			Type:    classifyLink(href, base),
			HasText: text != "",
		})
	})
}

func (p *Parser) extractMeta(doc *goquery.Document, result *ParsedContent) {
	result.HTMLTitle = collapse(doc.Find("title").First().Text())
	result.MetaTags.Language = strings.TrimSpace(doc.Find("html").AttrOr("lang", ""))
	result.MetaTags.Canonical = strings.TrimSpace(doc.Find("link[rel='canonical']").AttrOr("href", ""))

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		if cs, ok := s.Attr("charset"); ok && result.MetaTags.Charset == "" {
			result.MetaTags.Charset = strings.TrimSpace(cs)
		}

		content := strings.TrimSpace(s.AttrOr("content", ""))
		name := strings.ToLower(strings.TrimSpace(s.AttrOr("name", "")))
		property := strings.ToLower(strings.TrimSpace(s.AttrOr("property", "")))
		httpEquiv := strings.ToLower(strings.TrimSpace(s.AttrOr("http-equiv", "")))

		switch {
		case name == "viewport":
			result.MetaTags.Viewport = content
		case name == "robots":
			result.MetaTags.Robots = content
		case name == "description":
			result.MetaDescription = content
		case name == "twitter:card":
			result.TwitterCard = content
		case name == "date" && result.PublishedDate == "":
			result.PublishedDate = content
		case property == "og:title":
			result.OpenGraph.Title = content
		case property == "og:description":
			result.OpenGraph.Description = content
		case property == "og:image":
			result.OpenGraph.Image = content
		case property == "article:published_time" || property == "article:modified_time":
			if result.PublishedDate == "" {
				result.PublishedDate = content
			}
		case httpEquiv == "content-type" && result.MetaTags.Charset == "":
			if idx := strings.Index(strings.ToLower(content), "charset="); idx >= 0 {
				result.MetaTags.Charset = strings.TrimSpace(content[idx+len("charset="):])
			}
		}
	})

	if result.PublishedDate == "" {
		result.PublishedDate = strings.TrimSpace(doc.Find("time[datetime]").First().AttrOr("datetime", ""))
	}
}

func (p *Parser) extractStructure(doc *goquery.Document, result *ParsedContent) {
	se := StructuralElements{
		HasNav:     doc.Find("nav").Length() > 0,
		HasHeader:  doc.Find("header").Length() > 0,
		HasFooter:  doc.Find("footer").Length() > 0,
		HasMain:    doc.Find("main").Length() > 0,
		HasArticle: doc.Find("article").Length() > 0,
	}
	for _, present := range []bool{se.HasNav, se.HasHeader, se.HasFooter, se.HasMain, se.HasArticle} {
		if present {
			se.SemanticScore++
		}
	}
	result.StructuralElements = se

	result.HasStructuredData = doc.Find("script[type='application/ld+json'], [itemscope]").Length() > 0
}

// classifyLink decides the link type from its href and the page's base URL
func classifyLink(href string, base *url.URL) LinkType {
	lower := strings.ToLower(href)
	switch {
	case strings.HasPrefix(lower, "mailto:"):
		return LinkEmail
	case strings.HasPrefix(lower, "tel:"):
		return LinkPhone
	case lower == "" || strings.HasPrefix(lower, "#") || strings.HasPrefix(lower, "javascript:"):
		return LinkAnchor
	}

	u, err := url.Parse(href)
	if err != nil {
		return LinkExternal
	}
	if u.Host == "" {
		return LinkInternal
	}
	if base != nil && sameHost(u.Host, base.Host) {
		return LinkInternal
	}
	return LinkExternal
}

func sameHost(a, b string) bool {
	a = strings.TrimPrefix(strings.ToLower(a), "www.")
	b = strings.TrimPrefix(strings.ToLower(b), "www.")
	return a == b
}

// renderText writes the readable text below n, separating block elements with blank lines
func renderText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if skippedElements[n.Data] {
			return
		}
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		b.WriteString("\n\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(c, b)
	}
	if block {
		b.WriteString("\n\n")
	} else if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
		b.WriteString(" ")
	}
}

// normalizeText collapses inline whitespace while keeping line and paragraph breaks
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = inlineSpace.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	s = strings.Join(lines, "\n")
	s = extraBreaks.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
