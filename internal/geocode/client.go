package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrNotResolved means the provider answered but found nothing for the
// address.
var ErrNotResolved = errors.New("address not resolved")

type Coords struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Client talks to a Nominatim-compatible geocoding endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type nominatimResult struct {
	Lat     string `json:"lat"`
	Lon     string `json:"lon"`
	Address struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Road        string `json:"road"`
		Pedestrian  string `json:"pedestrian"`
		HouseNumber string `json:"house_number"`
	} `json:"address"`
	DisplayName string `json:"display_name"`
}

// Resolve geocodes one address to coordinates. It returns ErrNotResolved
// when the provider has no answer and a wrapped error on transport or
// provider failures.
func (c *Client) Resolve(ctx context.Context, address string) (Coords, error) {
	query := url.Values{
		"format":          {"json"},
		"limit":           {"1"},
		"accept-language": {"ru"},
		"q":               {address},
	}

	results, err := c.search(ctx, query)
	if err != nil {
		return Coords{}, err
	}
	if len(results) == 0 {
		return Coords{}, ErrNotResolved
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return Coords{}, ErrNotResolved
	}
	return Coords{Lon: lon, Lat: lat}, nil
}

// Suggest returns up to limit assembled address strings for a partial
// query, used by the autosuggest path.
func (c *Client) Suggest(ctx context.Context, text string, limit int) ([]string, error) {
	query := url.Values{
		"format":          {"json"},
		"limit":           {strconv.Itoa(limit)},
		"addressdetails":  {"1"},
		"accept-language": {"ru"},
		"q":               {text},
	}

	results, err := c.search(ctx, query)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(results))
	for _, r := range results {
		if assembled := assembleAddress(r); assembled != "" {
			out = append(out, assembled)
		}
	}
	return out, nil
}

func (c *Client) search(ctx context.Context, query url.Values) ([]nominatimResult, error) {
	endpoint := c.baseURL + "/search?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoder request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	// Nominatim usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	return results, nil
}

// assembleAddress builds the "г. City, road, д. N" display form from
// provider address parts, falling back to the raw display name.
func assembleAddress(r nominatimResult) string {
	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	if city == "" {
		city = r.Address.Village
	}
	road := r.Address.Road
	if road == "" {
		road = r.Address.Pedestrian
	}

	var parts []string
	if city != "" {
		parts = append(parts, "г. "+city)
	}
	if road != "" {
		parts = append(parts, road)
	}
	if r.Address.HouseNumber != "" {
		parts = append(parts, "д. "+r.Address.HouseNumber)
	}

	if len(parts) == 0 {
		return r.DisplayName
	}
	return strings.Join(parts, ", ")
}
