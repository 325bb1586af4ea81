package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"investpro/internal/cache"
)

const (
	exchangeCacheKey = "exchange_rate:usd_brl"
	upstreamPair     = "USDBRL"
	createDateLayout = "2006-01-02 15:04:05"
)

// Quote is the USD/BRL exchange rate snapshot served to clients. JSON field
// names follow the public API contract.
type Quote struct {
	Rate      float64   `json:"rate"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Variation float64   `json:"variation"`
	VarBid    float64   `json:"varBid"`
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CodeIn    string    `json:"codein"`
}

// CachedQuote is a Quote annotated with cache metadata.
type CachedQuote struct {
	Quote
	Cached   bool `json:"cached"`
	CacheAge int  `json:"cacheAge"`
}

// cacheEntry is the single cached value: the quote plus when it was fetched.
// Staleness is decided by isStale rather than a redis TTL.
type cacheEntry struct {
	Quote     Quote     `json:"quote"`
	FetchedAt time.Time `json:"fetched_at"`
}

func isStale(fetchedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(fetchedAt) >= ttl
}

// upstreamQuote mirrors the awesomeapi payload, which carries every number
// as a string.
type upstreamQuote struct {
	Bid        string `json:"bid"`
	High       string `json:"high"`
	Low        string `json:"low"`
	PctChange  string `json:"pctChange"`
	VarBid     string `json:"varBid"`
	CreateDate string `json:"create_date"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	CodeIn     string `json:"codein"`
}

// ExchangeRateService proxies the USD/BRL rate from the upstream quote API.
type ExchangeRateService interface {
	// CurrentRate always hits the upstream API.
	CurrentRate(ctx context.Context) (*Quote, error)
	// CachedRate serves the cached quote while it is fresh, refetching
	// otherwise.
	CachedRate(ctx context.Context) (*CachedQuote, error)
}

type exchangeRateService struct {
	httpClient *http.Client
	url        string
	cache      *cache.Client
	ttl        time.Duration
	now        func() time.Time
}

// NewExchangeRateService creates an exchange rate service caching quotes for
// ttl.
func NewExchangeRateService(url string, cache *cache.Client, ttl time.Duration) ExchangeRateService {
	return &exchangeRateService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		url:        url,
		cache:      cache,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *exchangeRateService) CurrentRate(ctx context.Context) (*Quote, error) {
	return s.fetch(ctx)
}

func (s *exchangeRateService) CachedRate(ctx context.Context) (*CachedQuote, error) {
	if data, _ := s.cache.Get(ctx, exchangeCacheKey); data != nil {
		var entry cacheEntry
		if err := json.Unmarshal(data, &entry); err == nil && !isStale(entry.FetchedAt, s.now(), s.ttl) {
			age := int(s.now().Sub(entry.FetchedAt) / time.Second)
			return &CachedQuote{Quote: entry.Quote, Cached: true, CacheAge: age}, nil
		}
	}

	quote, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	entry := cacheEntry{Quote: *quote, FetchedAt: s.now()}
	if payload, err := json.Marshal(entry); err == nil {
		_ = s.cache.Set(ctx, exchangeCacheKey, payload, 0)
	}

	return &CachedQuote{Quote: *quote}, nil
}

func (s *exchangeRateService) fetch(ctx context.Context) (*Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build quote request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	var payload map[string]upstreamQuote
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode quote payload: %w", err)
	}
	raw, ok := payload[upstreamPair]
	if !ok {
		return nil, fmt.Errorf("quote payload missing %s", upstreamPair)
	}
	return parseQuote(raw)
}

func parseQuote(raw upstreamQuote) (*Quote, error) {
	quote := &Quote{
		Name:   raw.Name,
		Code:   raw.Code,
		CodeIn: raw.CodeIn,
	}
	for _, field := range []struct {
		name  string
		value string
		dst   *float64
	}{
		{"bid", raw.Bid, &quote.Rate},
		{"high", raw.High, &quote.High},
		{"low", raw.Low, &quote.Low},
		{"pctChange", raw.PctChange, &quote.Variation},
		{"varBid", raw.VarBid, &quote.VarBid},
	} {
		parsed, err := strconv.ParseFloat(field.value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse quote field %s: %w", field.name, err)
		}
		*field.dst = parsed
	}

	ts, err := time.Parse(createDateLayout, raw.CreateDate)
	if err != nil {
		return nil, fmt.Errorf("parse quote timestamp: %w", err)
	}
	quote.Timestamp = ts
	return quote, nil
}
