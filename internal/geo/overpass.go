package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultMirrors are the public Overpass endpoints queried in a random
// order on every call.
var DefaultMirrors = []string{
	"https://overpass.kumi.systems/api",
	"https://overpass-api.de/api",
	"https://overpass.openstreetmap.fr/api",
	"https://overpass.osm.ch/api",
}

const (
	overpassTimeout = 60 * time.Second
	initialBackoff  = time.Second
	maxBackoff      = 10 * time.Second
	maxJitter       = 500 * time.Millisecond
)

type overpassClient struct {
	mirrors    []string
	maxRetries int
	userAgent  string
	httpClient *http.Client
	sleep      func(time.Duration)
	logf       func(format string, args ...any)

	// rand.Rand is not safe for concurrent use; the mutex keeps Resolve
	// callable from multiple goroutines.
	rndMu sync.Mutex
	rnd   *rand.Rand
}

// buildOverpassQuery matches the variant case-insensitively against both
// name and name:en of aerialway features and their stations inside the box.
func buildOverpassQuery(variant string, bbox BoundingBox) string {
	safe := regexp.QuoteMeta(variant)
	box := fmt.Sprintf("(%g,%g,%g,%g)", bbox.MinLat, bbox.MinLon, bbox.MaxLat, bbox.MaxLon)

	var b strings.Builder
	b.WriteString("[out:json][timeout:45];\n(\n")
	for _, filter := range []string{`["aerialway"]`, `["aerialway"="station"]`} {
		for _, key := range []string{"name", "name:en"} {
			for _, kind := range []string{"node", "way", "relation"} {
				fmt.Fprintf(&b, "  %s%s[%q~%q,i]%s;\n", kind, filter, key, safe, box)
			}
		}
	}
	b.WriteString(");\nout center tags qt;\n")
	return b.String()
}

func interpreterURL(base string) string {
	u := strings.TrimRight(base, "/")
	if !strings.HasSuffix(u, "interpreter") {
		u += "/interpreter"
	}
	return u
}

// query tries the variant against every mirror in a freshly shuffled order,
// retrying transient failures with exponential backoff. A valid response
// with zero elements exhausts the mirror for this variant. Returns nil when
// no mirror yields a usable top candidate.
func (c *overpassClient) query(ctx context.Context, variant string, bbox BoundingBox) *Feature {
	payload := buildOverpassQuery(variant, bbox)

	mirrors := make([]string, len(c.mirrors))
	copy(mirrors, c.mirrors)
	c.rndMu.Lock()
	c.rnd.Shuffle(len(mirrors), func(i, j int) { mirrors[i], mirrors[j] = mirrors[j], mirrors[i] })
	c.rndMu.Unlock()

	for _, base := range mirrors {
		u := interpreterURL(base)
		backoff := initialBackoff
		for attempt := 0; attempt < c.maxRetries; attempt++ {
			els, retryable := c.attempt(ctx, u, payload)
			if !retryable {
				if len(els) == 0 {
					break
				}
				ranked := rankElements(els, variant)
				if f := featureFromElement(ranked[0]); f != nil {
					return f
				}
				// Top candidate without coordinates: this mirror has
				// nothing better to offer for the variant.
				break
			}
			if ctx.Err() != nil {
				return nil
			}
			c.rndMu.Lock()
			jitter := time.Duration(c.rnd.Float64() * float64(maxJitter))
			c.rndMu.Unlock()
			c.sleep(backoff + jitter)
			backoff = min(backoff*2, maxBackoff)
		}
	}
	return nil
}

// attempt returns the parsed element list, or retryable=true on any
// transport error, non-200 status or non-JSON body.
func (c *overpassClient) attempt(ctx context.Context, u, payload string) (els []osmElement, retryable bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(payload))
	if err != nil {
		return nil, true
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logf("overpass error @ %s: %v", u, err)
		return nil, true
	}
	defer resp.Body.Close()

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if resp.StatusCode != http.StatusOK || !strings.Contains(ct, "application/json") {
		c.logf("overpass non-json %d @ %s", resp.StatusCode, u)
		return nil, true
	}

	var out overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logf("overpass decode error @ %s: %v", u, err)
		return nil, true
	}
	return out.Elements, false
}

func featureFromElement(el osmElement) *Feature {
	lat, lon, ok := el.coords()
	if !ok {
		return nil
	}
	return &Feature{
		Lat:       lat,
		Lon:       lon,
		Name:      el.displayName(),
		OSMType:   el.Type,
		OSMID:     strconv.FormatInt(el.ID, 10),
		Aerialway: el.Tags["aerialway"],
	}
}
