package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LiquiditySentinel/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFetchSeriesFiltersSentinelsAndSorts(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"series_id":         r.URL.Query().Get("series_id"),
			"api_key":           r.URL.Query().Get("api_key"),
			"file_type":         r.URL.Query().Get("file_type"),
			"observation_start": r.URL.Query().Get("observation_start"),
			"observation_end":   r.URL.Query().Get("observation_end"),
		}
		fmt.Fprint(w, `{"observations":[
			{"date":"2024-06-12","value":"7001.5"},
			{"date":"2024-06-10","value":"."},
			{"date":"2024-06-11","value":""},
			{"date":"2024-06-05","value":"6990.0"},
			{"date":"bad-date","value":"1"},
			{"date":"2024-06-06","value":"not-a-number"}
		]}`)
	}))
	defer srv.Close()

	f := NewFREDFetcher(srv.URL, "test-key", "")
	observations, err := f.FetchSeries("WALCL", day("2024-06-01"), day("2024-06-15"))
	require.NoError(t, err)

	require.Len(t, observations, 2)
	assert.Equal(t, day("2024-06-05"), observations[0].Date)
	assert.Equal(t, 6990.0, observations[0].Value)
	assert.Equal(t, day("2024-06-12"), observations[1].Date)
	assert.Equal(t, 7001.5, observations[1].Value)

	assert.Equal(t, "WALCL", gotQuery["series_id"])
	assert.Equal(t, "test-key", gotQuery["api_key"])
	assert.Equal(t, "json", gotQuery["file_type"])
	assert.Equal(t, "2024-06-01", gotQuery["observation_start"])
	assert.Equal(t, "2024-06-15", gotQuery["observation_end"])
}

func TestFetchSeriesMissingAPIKey(t *testing.T) {
	f := NewFREDFetcher("http://unused.invalid", "", "")
	_, err := f.FetchSeries("WALCL", day("2024-06-01"), day("2024-06-15"))
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestFetchSeriesNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad api key", http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewFREDFetcher(srv.URL, "wrong", "")
	_, err := f.FetchSeries("WALCL", day("2024-06-01"), day("2024-06-15"))
	assert.ErrorIs(t, err, ErrDataUnavailable)
	assert.Contains(t, err.Error(), "403")
}

func TestFetchSeriesAllValuesFiltered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"observations":[{"date":"2024-06-12","value":"."}]}`)
	}))
	defer srv.Close()

	f := NewFREDFetcher(srv.URL, "test-key", "")
	_, err := f.FetchSeries("DGS2", day("2024-06-01"), day("2024-06-15"))
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestCDSScraperParsesValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<div class="chart"><span class="indicator-data"> 1,234.5 </span></div>
			<span class="indicator-data">99</span>
		</body></html>`)
	}))
	defer srv.Close()

	s := NewCDSScraper(srv.URL, "")
	value, err := s.FetchValue()
	require.NoError(t, err)
	assert.Equal(t, 1234.5, value)
}

func TestCDSScraperMissingElement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>nothing here</p></body></html>`)
	}))
	defer srv.Close()

	s := NewCDSScraper(srv.URL, "")
	_, err := s.FetchValue()
	assert.ErrorIs(t, err, ErrScrape)
}

func TestCDSScraperNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := NewCDSScraper(srv.URL, "")
	_, err := s.FetchValue()
	assert.ErrorIs(t, err, ErrScrape)
}

func TestMockFetcherRangeFiltering(t *testing.T) {
	m := &MockFetcher{Series: map[string][]model.Observation{}}
	m.Series["WALCL"] = GenerateMockSeries(7000, 30)

	observations, err := m.FetchSeries("WALCL", time.Now().AddDate(0, 0, -10), time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, observations)
	assert.Less(t, len(observations), 30)

	_, err = m.FetchSeries("NOPE", time.Now().AddDate(0, 0, -10), time.Now())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}
