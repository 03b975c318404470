package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"LiquiditySentinel/internal/model"
)

// DefaultFREDBaseURL is the public FRED observations endpoint.
const DefaultFREDBaseURL = "https://api.stlouisfed.org/fred/series/observations"

// missingSentinel is FRED's placeholder for dates without a published value.
const missingSentinel = "."

// FREDFetcher implements SeriesFetcher against the St. Louis Fed FRED API.
type FREDFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewFREDFetcher creates a fetcher with optional proxy support.
func NewFREDFetcher(baseURL, apiKey, proxyURL string) *FREDFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if baseURL == "" {
		baseURL = DefaultFREDBaseURL
	}
	return &FREDFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

func (f *FREDFetcher) Name() string { return "fred" }

// fredResponse is the expected JSON shape from the observations endpoint.
// Values arrive as strings; "." marks a missing point.
type fredResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// FetchSeries performs one GET for the series over [start, end], drops
// sentinel and empty values, and returns observations sorted by date.
func (f *FREDFetcher) FetchSeries(seriesID string, start, end time.Time) ([]model.Observation, error) {
	if f.APIKey == "" {
		return nil, fmt.Errorf("%w: FRED API key not configured", ErrDataUnavailable)
	}

	params := url.Values{}
	params.Set("series_id", seriesID)
	params.Set("api_key", f.APIKey)
	params.Set("file_type", "json")
	params.Set("observation_start", start.Format("2006-01-02"))
	params.Set("observation_end", end.Format("2006-01-02"))

	resp, err := f.Client.Get(f.BaseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %v", ErrDataUnavailable, seriesID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s: status %d, body: %s", ErrDataUnavailable, seriesID, resp.StatusCode, string(body))
	}

	var payload fredResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrDataUnavailable, seriesID, err)
	}

	observations := make([]model.Observation, 0, len(payload.Observations))
	for _, obs := range payload.Observations {
		if obs.Value == missingSentinel || obs.Value == "" {
			continue
		}
		date, err := time.Parse("2006-01-02", obs.Date)
		if err != nil {
			continue
		}
		var value float64
		if _, err := fmt.Sscanf(obs.Value, "%f", &value); err != nil {
			continue
		}
		observations = append(observations, model.Observation{Date: date, Value: value})
	}
	if len(observations) == 0 {
		return nil, fmt.Errorf("%w: %s returned no usable observations", ErrDataUnavailable, seriesID)
	}

	sort.Slice(observations, func(i, j int) bool { return observations[i].Date.Before(observations[j].Date) })
	return observations, nil
}
