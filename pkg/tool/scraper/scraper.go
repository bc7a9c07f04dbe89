package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	requestTimeout = 15 * time.Second
	userAgent      = "LegalChat-LawNotes-Scraper/1.0 (Go; Fiber; Agent)"

	// Pages that resolve but yield less text than this are reported as a
	// diagnostic rather than passed through as content.
	minContentLen = 50

	// contentContainerClass is the main-content wrapper on the source site.
	// When absent the whole body text is the fallback.
	contentContainerClass = "content-area"
)

// LawNotesScraper fetches and extracts the text of a fixed law-notes URL.
// The URL is set at construction; the tool takes no arguments from the model.
// Every failure mode (network, HTTP status, parsing) is folded into the
// returned string so the agent loop always gets a result.
type LawNotesScraper struct {
	fixedURL string
	client   *http.Client
}

func NewLawNotesScraper(fixedURL string) *LawNotesScraper {
	return &LawNotesScraper{
		fixedURL: fixedURL,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (s *LawNotesScraper) Name() string {
	return "law_notes_scraper"
}

func (s *LawNotesScraper) Description() string {
	return fmt.Sprintf(
		"A specialized tool that scrapes the text content from the law notes URL: %s. "+
			"Use it to find detailed legal concepts, notes, and topic summaries. It takes NO arguments.",
		s.fixedURL,
	)
}

func (s *LawNotesScraper) Schema() map[string]interface{} {
	return nil
}

func (s *LawNotesScraper) Execute(ctx context.Context, _ map[string]interface{}) string {
	url := s.fixedURL

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Sprintf("Error: Could not access law notes URL %s. Details: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Sprintf("Error: Could not access law notes URL %s. Details: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Sprintf("Error: Could not access law notes URL %s. Details: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return fmt.Sprintf("Error: Failed to process content from URL %s. Details: %v", url, err)
	}

	root := findByClass(doc, contentContainerClass)
	if root == nil {
		root = findByTag(doc, "body")
	}
	if root == nil {
		root = doc
	}

	var sb strings.Builder
	collectText(root, &sb)

	// Collapse all whitespace runs to single spaces.
	cleanText := strings.Join(strings.Fields(sb.String()), " ")

	if len(cleanText) < minContentLen {
		snippet := cleanText
		if len(snippet) > minContentLen {
			snippet = snippet[:minContentLen]
		}
		return fmt.Sprintf("Successfully accessed URL %s, but extracted very little content. Extracted snippet: %s...", url, snippet)
	}

	return fmt.Sprintf("--- START OF LAW NOTES CONTENT ---\n\n%s\n\n--- END OF LAW NOTES CONTENT ---", cleanText)
}

// collectText walks the subtree appending text nodes, skipping script and
// style elements entirely.
func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key != "class" {
				continue
			}
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return n
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func findByTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}
