package geo

import (
	"context"
	"math/rand"
	"net/http"
	"time"
)

// Feature is one resolved OpenStreetMap object.
type Feature struct {
	Lat       float64
	Lon       float64
	Name      string
	OSMType   string // "node", "way", "relation", or SourceNominatim
	OSMID     string
	Aerialway string
}

// DefaultUserAgent identifies the client to the public OSM services.
const DefaultUserAgent = "geobot/1.0 (+https://github.com/ngalkin/geobot)"

// Config is the immutable configuration of a Resolver. Zero values fall
// back to the public defaults; the hooks exist for deterministic tests.
type Config struct {
	BBox    BoundingBox
	Profile VariantProfile

	Mirrors      []string      // Overpass endpoints, DefaultMirrors when empty
	MaxRetries   int           // attempts per mirror, default 3
	UserAgent    string
	NominatimURL string
	HTTPTimeout  time.Duration // per-request timeout for both services; service defaults when zero

	HTTPClient *http.Client         // shared by both services when set
	Sleep      func(time.Duration)  // backoff sleep, default time.Sleep
	Rand       *rand.Rand           // mirror shuffle and jitter source
	Logf       func(string, ...any) // diagnostics sink, default silent
}

// Resolver maps noisy lift names to OSM features inside one bounding box.
// It holds no mutable state across calls, so a single Resolver is safe to
// share between goroutines.
type Resolver struct {
	cfg       Config
	overpass  *overpassClient
	nominatim *nominatimClient
}

func NewResolver(cfg Config) (*Resolver, error) {
	if _, err := NewBoundingBox(cfg.BBox.MinLat, cfg.BBox.MinLon, cfg.BBox.MaxLat, cfg.BBox.MaxLon); err != nil {
		return nil, err
	}
	if len(cfg.Mirrors) == 0 {
		cfg.Mirrors = DefaultMirrors
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.NominatimURL == "" {
		cfg.NominatimURL = defaultNominatimURL
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logf == nil {
		cfg.Logf = func(string, ...any) {}
	}

	overpassHTTP := cfg.HTTPClient
	if overpassHTTP == nil {
		t := overpassTimeout
		if cfg.HTTPTimeout > 0 {
			t = cfg.HTTPTimeout
		}
		overpassHTTP = &http.Client{Timeout: t}
	}
	nominatimHTTP := cfg.HTTPClient
	if nominatimHTTP == nil {
		t := nominatimTimeout
		if cfg.HTTPTimeout > 0 {
			t = cfg.HTTPTimeout
		}
		nominatimHTTP = &http.Client{Timeout: t}
	}

	return &Resolver{
		cfg: cfg,
		overpass: &overpassClient{
			mirrors:    cfg.Mirrors,
			maxRetries: cfg.MaxRetries,
			userAgent:  cfg.UserAgent,
			httpClient: overpassHTTP,
			sleep:      cfg.Sleep,
			rnd:        cfg.Rand,
			logf:       cfg.Logf,
		},
		nominatim: &nominatimClient{
			baseURL:    cfg.NominatimURL,
			userAgent:  cfg.UserAgent,
			httpClient: nominatimHTTP,
			logf:       cfg.Logf,
		},
	}, nil
}

// resolveState makes the termination conditions of a resolution run
// explicit: primary variants first, then fallback queries, then done.
type resolveState int

const (
	tryPrimary resolveState = iota
	tryFallback
	done
)

// Resolve maps one raw name to its best OSM feature. Variants are tried
// against Overpass in order, first success wins; if every variant comes up
// empty the fallback queries go to Nominatim in order. Returns nil when all
// sources are exhausted, never an error, so one unresolvable name cannot
// stop a batch.
func (r *Resolver) Resolve(ctx context.Context, rawName string, fallbackQueries []string) *Feature {
	var found *Feature
	state := tryPrimary
	for state != done {
		switch state {
		case tryPrimary:
			for _, v := range Variants(rawName, r.cfg.Profile) {
				if ctx.Err() != nil {
					break
				}
				r.cfg.Logf("overpass variant: %s", v)
				if f := r.overpass.query(ctx, v, r.cfg.BBox); f != nil {
					found = f
					break
				}
			}
			if found != nil || ctx.Err() != nil {
				state = done
			} else {
				state = tryFallback
			}
		case tryFallback:
			for _, q := range fallbackQueries {
				if ctx.Err() != nil {
					break
				}
				r.cfg.Logf("nominatim query: %s", q)
				if f := r.nominatim.query(ctx, q, r.cfg.BBox); f != nil {
					found = f
					break
				}
			}
			state = done
		}
	}
	return found
}
