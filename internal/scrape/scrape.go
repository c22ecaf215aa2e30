// Package scrape turns a job-posting URL into plain job-description text.
// Fetching is plain HTTP with an optional headless-browser fallback for
// JavaScript-rendered boards; extraction removes page noise before pulling
// the main content. Scraping never fails the request: every failure mode
// degrades to a fixed sentinel string so downstream scoring still runs.
package scrape

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the scraper to job boards.
	DefaultUserAgent = "Mozilla/5.0 (compatible; AgenticHire/1.0)"
	// MaxJobTextChars caps ingested job-description text.
	MaxJobTextChars = 2500
)

// Sentinel texts returned in place of job content when scraping degrades.
const (
	SentinelDownloadFailed = "Failed to download job page."
	SentinelNoText         = "No text extracted."
	SentinelScrapeError    = "Error scraping job description."
)

// Options configures job-page scraping.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool
	Verbose    bool
}

// DefaultOptions returns sensible defaults for scraping.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// JobDescription fetches a job posting and returns its plain text, truncated
// to MaxJobTextChars. It never returns an error: download failures,
// extraction failures and empty pages each map to their sentinel string.
func JobDescription(ctx context.Context, urlStr string, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}

	html, err := fetchHTML(ctx, urlStr, opts)
	if err != nil {
		if opts.Verbose {
			log.Printf("[scrape] fetch failed for %s: %v", urlStr, err)
		}
		if errors.Is(err, ErrDownload) {
			return SentinelDownloadFailed
		}
		return SentinelScrapeError
	}

	text, err := extractText(html)
	if err != nil {
		if opts.Verbose {
			log.Printf("[scrape] extraction failed for %s: %v", urlStr, err)
		}
		return SentinelScrapeError
	}

	if opts.UseBrowser && shouldUseBrowser(text) {
		rendered, berr := renderWithBrowser(ctx, urlStr, opts.Timeout)
		if berr != nil {
			if opts.Verbose {
				log.Printf("[scrape] browser fallback failed for %s: %v", urlStr, berr)
			}
		} else if btext, terr := extractText(rendered); terr == nil {
			text = btext
		}
	}

	text = strings.TrimSpace(truncate(text, MaxJobTextChars))
	if text == "" {
		return SentinelNoText
	}
	return text
}

// truncate cuts text to at most limit characters (runes, not bytes).
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
