// Package jobimport lets recruiters import a job posting from a URL: fetch
// the page, reduce it to text, and extract the structured posting context
// that question generation consumes.
package jobimport

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// fetchTimeout bounds the plain HTTP fetch of a posting page.
const fetchTimeout = 30 * time.Second

// browserTimeout bounds the headless-browser fallback for SPA pages.
const browserTimeout = 60 * time.Second

// minContentLength is the shortest extracted text considered a real posting.
// Anything shorter is likely a JavaScript shell and triggers the browser
// fallback.
const minContentLength = 500

const userAgent = "Mozilla/5.0 (compatible; HireLoop/1.0)"

// FetchPostingText retrieves a posting URL and returns its main body text.
// A static fetch is tried first; when the result looks like an unrendered
// SPA shell, the page is re-rendered in a headless browser.
func FetchPostingText(ctx context.Context, postingURL string) (string, error) {
	parsed, err := url.Parse(postingURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid posting URL %q", postingURL)
	}

	html, err := fetchHTML(ctx, postingURL)
	if err != nil {
		return "", err
	}
	text, err := extractText(html)
	if err != nil {
		return "", err
	}

	if len(strings.TrimSpace(text)) >= minContentLength {
		return text, nil
	}

	log.Printf("[jobimport] static fetch too thin for %s, rendering in browser", postingURL)
	rendered, err := renderWithBrowser(ctx, postingURL)
	if err != nil {
		// Keep whatever the static fetch produced rather than failing the
		// import outright.
		log.Printf("[jobimport] browser rendering failed: %v", err)
		return text, nil
	}
	return extractText(rendered)
}

func fetchHTML(ctx context.Context, postingURL string) (string, error) {
	client := &http.Client{Timeout: fetchTimeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, postingURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", postingURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch of %s returned HTTP %d", postingURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// extractText strips navigation and script noise and returns the page's
// main text content.
func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .cookie-banner, .sidebar, .popup").Remove()

	content := doc.Find("main, article, [class*=job-description], [class*=posting]")
	if content.Length() == 0 {
		content = doc.Find("body")
	}

	lines := strings.Split(content.First().Text(), "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, "\n"), nil
}

// renderWithBrowser loads the page in headless Chrome and returns the
// rendered HTML. Requires Chrome/Chromium on the host.
func renderWithBrowser(ctx context.Context, postingURL string) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, browserTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(postingURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
