package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"investpro/internal/cache"
)

const upstreamPayload = `{
	"USDBRL": {
		"code": "USD",
		"codein": "BRL",
		"name": "Dolar Americano/Real Brasileiro",
		"high": "5.20",
		"low": "5.10",
		"varBid": "0.02",
		"pctChange": "0.39",
		"bid": "5.15",
		"ask": "5.16",
		"timestamp": "1700000000",
		"create_date": "2023-11-14 19:13:20"
	}
}`

func TestIsStale(t *testing.T) {
	base := time.Date(2023, 11, 14, 12, 0, 0, 0, time.UTC)
	ttl := time.Minute

	tests := []struct {
		name      string
		fetchedAt time.Time
		now       time.Time
		want      bool
	}{
		{"just fetched", base, base, false},
		{"within ttl", base, base.Add(59 * time.Second), false},
		{"exactly at ttl", base, base.Add(time.Minute), true},
		{"past ttl", base, base.Add(2 * time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isStale(tt.fetchedAt, tt.now, ttl))
		})
	}
}

func TestParseQuote(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		quote, err := parseQuote(upstreamQuote{
			Bid:        "5.15",
			High:       "5.20",
			Low:        "5.10",
			PctChange:  "0.39",
			VarBid:     "0.02",
			CreateDate: "2023-11-14 19:13:20",
			Name:       "Dolar Americano/Real Brasileiro",
			Code:       "USD",
			CodeIn:     "BRL",
		})
		assert.NoError(t, err)
		assert.Equal(t, 5.15, quote.Rate)
		assert.Equal(t, 5.20, quote.High)
		assert.Equal(t, 0.39, quote.Variation)
		assert.Equal(t, "USD", quote.Code)
		assert.Equal(t, 2023, quote.Timestamp.Year())
	})

	t.Run("non numeric bid", func(t *testing.T) {
		_, err := parseQuote(upstreamQuote{Bid: "abc", High: "1", Low: "1", PctChange: "0", VarBid: "0"})
		assert.Error(t, err)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		_, err := parseQuote(upstreamQuote{Bid: "1", High: "1", Low: "1", PctChange: "0", VarBid: "0", CreateDate: "not a date"})
		assert.Error(t, err)
	})
}

func TestExchangeRateService_CurrentRate(t *testing.T) {
	var hits int
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamPayload))
	}))
	defer upstream.Close()

	svc := NewExchangeRateService(upstream.URL, nil, time.Minute)

	quote, err := svc.CurrentRate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5.15, quote.Rate)
	assert.Equal(t, "BRL", quote.CodeIn)

	// a second call hits upstream again, never the cache
	_, err = svc.CurrentRate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestExchangeRateService_CurrentRateUpstreamfailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	svc := NewExchangeRateService(upstream.URL, nil, time.Minute)
	_, err := svc.CurrentRate(context.Background())
	assert.Error(t, err)
}

func TestExchangeRateService_CachedRate(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	var hits int
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamPayload))
	}))
	defer upstream.Close()

	now := time.Date(2023, 11, 14, 12, 0, 0, 0, time.UTC)
	svc := &exchangeRateService{
		httpClient: upstream.Client(),
		url:        upstream.URL,
		cache:      cache.NewWithClient(rdb),
		ttl:        time.Minute,
		now:        func() time.Time { return now },
	}

	// miss: fetches upstream and stores the entry
	first, err := svc.CachedRate(context.Background())
	assert.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 0, first.CacheAge)
	assert.Equal(t, 1, hits)

	stored, err := rdb.Get(context.Background(), "exchange_rate:usd_brl").Bytes()
	assert.NoError(t, err)
	var entry cacheEntry
	assert.NoError(t, json.Unmarshal(stored, &entry))
	assert.Equal(t, 5.15, entry.Quote.Rate)

	// hit: fresh entry is served without touching upstream
	now = now.Add(30 * time.Second)
	second, err := svc.CachedRate(context.Background())
	assert.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, 30, second.CacheAge)
	assert.Equal(t, 5.15, second.Rate)
	assert.Equal(t, 1, hits)

	// stale entry forces a refetch
	now = now.Add(time.Minute)
	third, err := svc.CachedRate(context.Background())
	assert.NoError(t, err)
	assert.False(t, third.Cached)
	assert.Equal(t, 2, hits)
}

func TestExchangeRateService_CachedRateRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	mr.Close()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstreamPayload))
	}))
	defer upstream.Close()

	svc := NewExchangeRateService(upstream.URL, cache.NewWithClient(rdb), time.Minute)

	// unreachable redis degrades to a cache miss, requests still succeed
	quote, err := svc.CachedRate(context.Background())
	assert.NoError(t, err)
	assert.False(t, quote.Cached)
	assert.Equal(t, 5.15, quote.Rate)
}
