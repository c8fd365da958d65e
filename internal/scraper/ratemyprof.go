// Package scraper implements the professor rating source against a
// third-party ratings site. The extraction is selector-based and inherently
// brittle; every miss resolves to "no rating" rather than an error so the
// lookup stays best-effort.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	professorCardSelector = `[data-qa="professor-card"]`
	ratingLabelSelector   = `[data-qa="rating-label overall-rating"]`
)

// RateMyProfSource scrapes professor ratings from the public search pages.
type RateMyProfSource struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewRateMyProfSource constructs the scraper. baseURL points at the ratings
// site root; tests substitute a local server.
func NewRateMyProfSource(baseURL string, timeout time.Duration, logger *zap.Logger) *RateMyProfSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateMyProfSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Rating resolves an instructor's overall rating by scraping the search
// results: first professor card, follow its link, read the labeled rating.
func (s *RateMyProfSource) Rating(ctx context.Context, instructor, university string) (float64, bool, error) {
	searchURL := s.searchURL(instructor, university)
	searchDoc, err := s.fetch(ctx, searchURL)
	if err != nil {
		return 0, false, err
	}
	if searchDoc == nil {
		return 0, false, nil
	}

	card := searchDoc.Find(professorCardSelector).First()
	if card.Length() == 0 {
		return 0, false, nil
	}
	href, ok := card.Find("a").Attr("href")
	if !ok || href == "" {
		return 0, false, nil
	}

	profDoc, err := s.fetch(ctx, s.baseURL+href)
	if err != nil {
		return 0, false, err
	}
	if profDoc == nil {
		return 0, false, nil
	}

	text := strings.TrimSpace(profDoc.Find(ratingLabelSelector).First().Text())
	rating, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false, nil
	}
	if rating < 0 || rating > 5 {
		s.logger.Debug("scraped rating out of range", zap.Float64("rating", rating))
		return 0, false, nil
	}
	return rating, true, nil
}

func (s *RateMyProfSource) searchURL(instructor, university string) string {
	query := url.QueryEscape(instructor + " " + university)
	return fmt.Sprintf("%s/search/professors/100?q=%s", s.baseURL, query)
}

// fetch returns a parsed document, or nil when the upstream answered with a
// non-200 status.
func (s *RateMyProfSource) fetch(ctx context.Context, target string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build rating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", target, err)
	}
	return doc, nil
}
