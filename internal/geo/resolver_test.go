package geo

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func newTestResolver(t *testing.T, overpassURL, nominatimURL string, client *http.Client) *Resolver {
	t.Helper()
	r, err := NewResolver(Config{
		BBox:         BoundingBox{MinLat: 43.10, MinLon: 76.85, MaxLat: 43.25, MaxLon: 77.15},
		Profile:      testProfile,
		Mirrors:      []string{overpassURL},
		MaxRetries:   1,
		NominatimURL: nominatimURL,
		HTTPClient:   client,
		Sleep:        func(time.Duration) {},
		Rand:         rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNewResolverRejectsInvalidBox(t *testing.T) {
	_, err := NewResolver(Config{BBox: BoundingBox{MinLat: 1, MinLon: 1, MaxLat: 0, MaxLon: 0}})
	if err == nil {
		t.Fatal("invalid bounding box accepted at construction")
	}
	_, err = NewResolver(Config{})
	if err == nil {
		t.Fatal("zero bounding box accepted at construction")
	}
}

func TestResolveFirstVariantWins(t *testing.T) {
	var overpassCalls int
	overpass := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		overpassCalls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[{"type":"way","id":42,"center":{"lat":43.16,"lon":76.99},"tags":{"name":"Konus","aerialway":"drag_lift"}}]}`))
	}))
	defer overpass.Close()
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("fallback reached although primary succeeded")
	}))
	defer nominatim.Close()

	r := newTestResolver(t, overpass.URL, nominatim.URL, overpass.Client())
	f := r.Resolve(context.Background(), "Konus", []string{"Konus Shymbulak"})
	if f == nil || f.OSMID != "42" {
		t.Fatalf("got %+v, want way 42", f)
	}
	if overpassCalls != 1 {
		t.Errorf("overpass calls = %d, want resolution to stop at first success", overpassCalls)
	}
}

func TestResolveFallsBackToNominatim(t *testing.T) {
	overpass := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[]}`))
	}))
	defer overpass.Close()

	var fallbackQueries []string
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		fallbackQueries = append(fallbackQueries, q)
		if len(fallbackQueries) == 2 {
			w.Write([]byte(`[{"lat":"43.12","lon":"76.95","display_name":"Konus, Medeu District"}]`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer nominatim.Close()

	r := newTestResolver(t, overpass.URL, nominatim.URL, overpass.Client())
	queries := []string{"Konus Shymbulak", "Konus Medeu", "Konus Almaty"}
	f := r.Resolve(context.Background(), "Konus", queries)
	if f == nil {
		t.Fatal("fallback result not returned")
	}
	if f.OSMType != SourceNominatim {
		t.Errorf("source = %q, want %q", f.OSMType, SourceNominatim)
	}
	if f.Lat != 43.12 || f.Lon != 76.95 {
		t.Errorf("coordinates = %v,%v", f.Lat, f.Lon)
	}
	if len(fallbackQueries) != 2 {
		t.Errorf("fallback queries attempted = %v, want stop after the second", fallbackQueries)
	}
	if fallbackQueries[0] != "Konus Shymbulak" || fallbackQueries[1] != "Konus Medeu" {
		t.Errorf("fallback order wrong: %v", fallbackQueries)
	}
}

func TestResolveExhaustedReturnsNil(t *testing.T) {
	overpass := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[]}`))
	}))
	defer overpass.Close()
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer nominatim.Close()

	r := newTestResolver(t, overpass.URL, nominatim.URL, overpass.Client())
	if f := r.Resolve(context.Background(), "Konus", []string{"Konus Almaty"}); f != nil {
		t.Errorf("got %+v, want explicit not-found nil", f)
	}
}

// Exercises the accent-stripping transform and the shuffle/jitter random
// source from many goroutines at once; meaningful under -race.
func TestResolveConcurrent(t *testing.T) {
	overpass := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[]}`))
	}))
	defer overpass.Close()
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer nominatim.Close()

	r := newTestResolver(t, overpass.URL, nominatim.URL, overpass.Client())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				if f := r.Resolve(context.Background(), "Séxtuple Express (Top)", []string{"Séxtuple Shymbulak"}); f != nil {
					t.Errorf("got %+v from an empty-elements server", f)
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewResolverHTTPTimeout(t *testing.T) {
	cfg := Config{BBox: BoundingBox{MinLat: 43.10, MinLon: 76.85, MaxLat: 43.25, MaxLon: 77.15}}

	r, err := NewResolver(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.overpass.httpClient.Timeout; got != overpassTimeout {
		t.Errorf("overpass timeout = %v, want service default %v", got, overpassTimeout)
	}
	if got := r.nominatim.httpClient.Timeout; got != nominatimTimeout {
		t.Errorf("nominatim timeout = %v, want service default %v", got, nominatimTimeout)
	}

	cfg.HTTPTimeout = 5 * time.Second
	r, err = NewResolver(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := r.overpass.httpClient.Timeout; got != 5*time.Second {
		t.Errorf("overpass timeout = %v, want override", got)
	}
	if got := r.nominatim.httpClient.Timeout; got != 5*time.Second {
		t.Errorf("nominatim timeout = %v, want override", got)
	}
}

func TestResolveStatelessAcrossCalls(t *testing.T) {
	var calls int
	overpass := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"elements":[{"type":"node","id":5,"lat":43.2,"lon":77.0,"tags":{"name":"Konus","aerialway":"gondola"}}]}`))
	}))
	defer overpass.Close()

	r := newTestResolver(t, overpass.URL, overpass.URL, overpass.Client())
	for i := 0; i < 3; i++ {
		f := r.Resolve(context.Background(), "Konus", nil)
		if f == nil || f.OSMID != "5" {
			t.Fatalf("got %+v on repeated call", f)
		}
	}
	if calls != 3 {
		t.Errorf("calls = %d, want one per resolution", calls)
	}
}
