package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLawNotesScraperMetadata(t *testing.T) {
	s := NewLawNotesScraper("https://example.com/law-notes/")

	assert.Equal(t, "law_notes_scraper", s.Name())
	assert.Contains(t, s.Description(), "https://example.com/law-notes/")
	assert.Nil(t, s.Schema())
}

func TestExecutePrefersContentArea(t *testing.T) {
	page := `<html><body>
		<nav>Site navigation that should be ignored</nav>
		<div class="wrapper content-area extra">
			<h1>Law of Contracts</h1>
			<p>A contract is an agreement enforceable by law between two or more parties.</p>
		</div>
		<footer>Footer junk</footer>
	</body></html>`
	srv := serve(t, http.StatusOK, page)

	out := NewLawNotesScraper(srv.URL).Execute(context.Background(), nil)

	assert.True(t, strings.HasPrefix(out, "--- START OF LAW NOTES CONTENT ---"))
	assert.True(t, strings.HasSuffix(out, "--- END OF LAW NOTES CONTENT ---"))
	assert.Contains(t, out, "Law of Contracts A contract is an agreement enforceable by law")
	assert.NotContains(t, out, "Site navigation")
	assert.NotContains(t, out, "Footer junk")
}

func TestExecuteFallsBackToBody(t *testing.T) {
	page := `<html><body>
		<p>Tort law deals with civil wrongs and provides remedies to injured parties.</p>
	</body></html>`
	srv := serve(t, http.StatusOK, page)

	out := NewLawNotesScraper(srv.URL).Execute(context.Background(), nil)

	assert.Contains(t, out, "Tort law deals with civil wrongs")
}

func TestExecuteSkipsScriptAndStyle(t *testing.T) {
	page := `<html><body><div class="content-area">
		<script>var secret = "should never appear";</script>
		<style>.hidden { display: none; }</style>
		<p>The doctrine of precedent binds lower courts to decisions of higher courts.</p>
	</div></body></html>`
	srv := serve(t, http.StatusOK, page)

	out := NewLawNotesScraper(srv.URL).Execute(context.Background(), nil)

	assert.Contains(t, out, "doctrine of precedent")
	assert.NotContains(t, out, "should never appear")
	assert.NotContains(t, out, "display: none")
}

func TestExecuteCollapsesWhitespace(t *testing.T) {
	page := "<html><body><div class=\"content-area\"><p>Equity   follows\n\n\tthe law, and equity will not suffer a wrong without a remedy.</p></div></body></html>"
	srv := serve(t, http.StatusOK, page)

	out := NewLawNotesScraper(srv.URL).Execute(context.Background(), nil)

	assert.Contains(t, out, "Equity follows the law, and equity will not suffer a wrong")
}

func TestExecuteReportsThinContent(t *testing.T) {
	srv := serve(t, http.StatusOK, `<html><body><p>Too short.</p></body></html>`)

	out := NewLawNotesScraper(srv.URL).Execute(context.Background(), nil)

	assert.Contains(t, out, "extracted very little content")
	assert.Contains(t, out, "Too short.")
	assert.NotContains(t, out, "START OF LAW NOTES CONTENT")
}

func TestExecuteReportsHTTPStatusError(t *testing.T) {
	srv := serve(t, http.StatusServiceUnavailable, "down")

	out := NewLawNotesScraper(srv.URL).Execute(context.Background(), nil)

	assert.True(t, strings.HasPrefix(out, "Error: Could not access law notes URL"))
	assert.Contains(t, out, "unexpected status 503")
}

func TestExecuteReportsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens on the port anymore

	out := NewLawNotesScraper(srv.URL).Execute(context.Background(), nil)

	assert.True(t, strings.HasPrefix(out, "Error: Could not access law notes URL"))
}
