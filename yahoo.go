package dca

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains functions to access the Yahoo Finance chart API.

// Periods are the relative period codes the chart endpoint accepts, in place
// of an explicit date range.
var Periods = []string{"1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// ValidPeriod reports whether p is a supported relative period code.
func ValidPeriod(p string) bool { return slices.Contains(Periods, p) }

// YahooDaily returns the daily price history for a symbol over an explicit
// date range, bounds included.
func YahooDaily(symbol string, r Range) (*PriceSeries, error) {
	// period2 is exclusive, push it past the last requested day.
	query := fmt.Sprintf("period1=%d&period2=%d", r.From.Unix(), r.To.Add(1).Unix())
	return yahooChart(symbol, query)
}

// YahooDailyPeriod returns the daily price history for a symbol over a
// relative period code such as "2y" or "6mo".
func YahooDailyPeriod(symbol, period string) (*PriceSeries, error) {
	if !ValidPeriod(period) {
		return nil, fmt.Errorf("unknown period %q, want one of %s", period, strings.Join(Periods, ", "))
	}
	return yahooChart(symbol, "range="+period)
}

// yahooChart fetches and decodes one chart payload.
//
//	{
//	  "chart": {
//	    "result": [ {
//	      "meta": {...},
//	      "timestamp": [1704207600, ...],
//	      "indicators": { "quote": [ { "close": [184.3, ...], "volume": [4512000, ...] } ] }
//	    } ],
//	    "error": null
//	  }
//	}
func yahooChart(symbol, query string) (*PriceSeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", ErrDataUnavailable)
	}

	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=1d&%s",
		url.PathEscape(symbol), query)

	var jobj any
	if err := jwget(dailyClient(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, symbol, err)
	}

	points, err := chartPoints(jobj, symbol)
	if err != nil {
		return nil, err
	}
	return NewPriceSeries(symbol, points)
}

// chartPoints extracts the daily points from a decoded chart payload.
func chartPoints(jobj any, symbol string) ([]PricePoint, error) {
	timestamps, err := jsonList(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no quotes: %v", ErrDataUnavailable, symbol, err)
	}
	closes, err := jsonList(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no closes: %v", ErrDataUnavailable, symbol, err)
	}
	if len(closes) != len(timestamps) {
		return nil, fmt.Errorf("%w: %s: %d timestamps but %d closes", ErrDataUnavailable, symbol, len(timestamps), len(closes))
	}
	// volume is optional in the payload, a missing list means zero volumes.
	volumes, _ := jsonList(jobj, "$.chart.result[0].indicators.quote[0].volume")

	points := make([]PricePoint, 0, len(timestamps))
	for i, jts := range timestamps {
		ts, ok := jts.(float64)
		if !ok {
			continue
		}
		// null closes happen on half sessions, skip them.
		close, ok := closes[i].(float64)
		if !ok || close <= 0 {
			continue
		}
		var volume int64
		if i < len(volumes) {
			if v, ok := volumes[i].(float64); ok {
				volume = int64(v)
			}
		}
		on := NewDate(time.Unix(int64(ts), 0).UTC().Date())
		points = append(points, PricePoint{Date: on, Close: close, Volume: volume})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: %s returned no trading sessions", ErrDataUnavailable, symbol)
	}
	return points, nil
}

// jsonList extracts a list at a jsonpath, tolerating the ambiguity of the
// library about returning a list of one answer or a single answer.
func jsonList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("parsing %q: not a list but %T", path, jval)
	}
	return jlist, nil
}

// YahooSearch queries the symbol directory for tickers matching the query.
func YahooSearch(query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty search query")
	}
	addr := "https://query2.finance.yahoo.com/v1/finance/search?q=" + url.QueryEscape(query)

	// that's the payload
	var content struct {
		Quotes []struct {
			Symbol    string `json:"symbol"`
			ShortName string `json:"shortname"`
			LongName  string `json:"longname"`
			Exchange  string `json:"exchange"`
			QuoteType string `json:"quoteType"`
		} `json:"quotes"`
	}
	if err := jwget(dailyClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("%w: search %q: %v", ErrDataUnavailable, query, err)
	}

	results := make([]SearchResult, 0, len(content.Quotes))
	for _, q := range content.Quotes {
		name := q.ShortName
		if name == "" {
			name = q.LongName
		}
		results = append(results, SearchResult{
			Symbol:   q.Symbol,
			Name:     name,
			Exchange: q.Exchange,
			Type:     q.QuoteType,
		})
	}
	return results, nil
}
