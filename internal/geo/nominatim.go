package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// SourceNominatim marks features found through the free-text fallback; such
// hits carry no numeric OSM id.
const SourceNominatim = "nominatim"

const (
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	nominatimTimeout    = 30 * time.Second
)

type nominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logf       func(format string, args ...any)
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// query is a single best-effort request; any failure means "no match".
// The last resort is never retried here, only re-invoked with a different
// text by the orchestrator.
func (c *nominatimClient) query(ctx context.Context, text string, bbox BoundingBox) *Feature {
	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("q", text)
	params.Set("limit", "1")
	params.Set("bounded", "1")
	params.Set("viewbox", bbox.Viewbox())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logf("nominatim error: %v", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logf("nominatim status %d", resp.StatusCode)
		return nil
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil || len(results) == 0 {
		return nil
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return nil
	}
	// bounded=1 is advisory once Nominatim falls back to unstructured
	// search, so the box is enforced here as well.
	if !bbox.Contains(lat, lon) {
		return nil
	}
	return &Feature{Lat: lat, Lon: lon, Name: results[0].DisplayName, OSMType: SourceNominatim}
}
