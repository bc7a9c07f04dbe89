package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	requestTimeout = 15 * time.Second
	userAgent      = "LegalChat-WebSearch/1.0 (Go; Fiber; Agent)"
	searchEndpoint = "https://html.duckduckgo.com/html/"
	maxResults     = 8
)

// DuckDuckGoSearch queries the DuckDuckGo HTML endpoint and formats the top
// results as plain text. Same never-throw contract as the scraper: every
// failure becomes a descriptive string for the agent.
type DuckDuckGoSearch struct {
	endpoint string
	client   *http.Client
}

func NewDuckDuckGoSearch() *DuckDuckGoSearch {
	return &DuckDuckGoSearch{
		endpoint: searchEndpoint,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (s *DuckDuckGoSearch) Name() string {
	return "web_search"
}

func (s *DuckDuckGoSearch) Description() string {
	return "Search the web with DuckDuckGo. Returns result titles, URLs and snippets. " +
		"Use it for general legal research, recent judgments, and statutory updates."
}

func (s *DuckDuckGoSearch) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query string",
			},
		},
		"required": []string{"query"},
	}
}

func (s *DuckDuckGoSearch) Execute(ctx context.Context, args map[string]interface{}) string {
	query, _ := args["query"].(string)
	query = strings.TrimSpace(query)
	if query == "" {
		return "Error: 'query' parameter is required"
	}

	reqURL := s.endpoint + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Sprintf("Error: Could not search for %q. Details: %v", query, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Sprintf("Error: Could not search for %q. Details: %v", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Sprintf("Error: Could not search for %q. Details: unexpected status %d", query, resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return fmt.Sprintf("Error: Failed to parse search results for %q. Details: %v", query, err)
	}

	results := parseResults(doc)
	if len(results) == 0 {
		return fmt.Sprintf("No results found for query: %s", query)
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Search results for %q:\n", query)
	for i, r := range results {
		fmt.Fprintf(&sb, "\n%d. %s\n   %s\n   %s\n", i+1, r.Title, r.URL, r.Snippet)
	}
	return sb.String()
}

type searchResult struct {
	Title   string
	URL     string
	Snippet string
}

// parseResults walks the DuckDuckGo HTML response. Result links carry the
// "result__a" class, snippets "result__snippet".
func parseResults(doc *html.Node) []searchResult {
	var results []searchResult

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "result") {
			r := searchResult{}
			if a := findAnchor(n, "result__a"); a != nil {
				r.Title = nodeText(a)
				r.URL = attrValue(a, "href")
			}
			if sn := findWithClass(n, "result__snippet"); sn != nil {
				r.Snippet = nodeText(sn)
			}
			if r.Title != "" {
				results = append(results, r)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return results
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func findWithClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findWithClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func findAnchor(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findAnchor(c, class); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
