package collector

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultCDSPageURL is the public MacroMicro US 5Y CDS chart page.
const DefaultCDSPageURL = "https://www.macromicro.me/charts/33506/us-cds"

// cdsValueSelector is the element carrying the latest value on the page.
// Not a stable contract; any page restructure breaks this.
const cdsValueSelector = "span.indicator-data"

// CDSScraper reads the latest US 5Y sovereign CDS value from a public
// chart page.
type CDSScraper struct {
	URL    string
	Client *http.Client
}

// NewCDSScraper creates a scraper with optional proxy support.
func NewCDSScraper(pageURL, proxyURL string) *CDSScraper {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if pageURL == "" {
		pageURL = DefaultCDSPageURL
	}
	return &CDSScraper{
		URL: pageURL,
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// FetchValue scrapes the page and parses the latest CDS value in bps.
func (s *CDSScraper) FetchValue() (float64, error) {
	req, err := http.NewRequest(http.MethodGet, s.URL, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrScrape, err)
	}
	// A browser UA improves the success rate against the public page.
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	req.Header.Set("Accept-Language", "zh-TW,zh;q=0.9,en;q=0.8")

	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: fetch CDS page: %v", ErrScrape, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: CDS page status %d", ErrScrape, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: parse CDS page: %v", ErrScrape, err)
	}

	raw := strings.TrimSpace(doc.Find(cdsValueSelector).First().Text())
	if raw == "" {
		return 0, fmt.Errorf("%w: CDS value element not found", ErrScrape)
	}
	raw = strings.ReplaceAll(raw, ",", "")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse CDS value %q: %v", ErrScrape, raw, err)
	}
	return value, nil
}
