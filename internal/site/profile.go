// Package site holds the per-resort resolution profiles: bounding box,
// alias tables, generic-word lists and context terms that used to be
// duplicated across one deployment script per resort.
package site

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ngalkin/geobot/internal/geo"
)

// Profile is everything the resolver and the row store need to know about
// one site.
type Profile struct {
	Key         string `yaml:"-"`
	Title       string `yaml:"title"`
	Spreadsheet string `yaml:"spreadsheet"`
	Worksheet   string `yaml:"worksheet"`

	// BBox is (min lat, min lon, max lat, max lon).
	BBox [4]float64 `yaml:"bbox,flow"`

	GenericWords     []string            `yaml:"generic_words"`
	Aliases          map[string][]string `yaml:"aliases"`
	ContextTerms     []string            `yaml:"context_terms"`
	FallbackSuffixes []string            `yaml:"fallback_suffixes"`

	// Headers is the expected A..J header row of the worksheet.
	Headers []string `yaml:"headers"`
}

func (p Profile) BoundingBox() (geo.BoundingBox, error) {
	return geo.NewBoundingBox(p.BBox[0], p.BBox[1], p.BBox[2], p.BBox[3])
}

func (p Profile) VariantProfile() geo.VariantProfile {
	return geo.VariantProfile{
		GenericWords: p.GenericWords,
		Aliases:      p.Aliases,
		ContextTerms: p.ContextTerms,
	}
}

// All returns the built-in profiles merged with the optional extras file.
// File entries override built-ins with the same key.
func All(extraFile string) (map[string]Profile, error) {
	profiles := Builtin()
	if extraFile == "" {
		return profiles, nil
	}
	extra, err := LoadFile(extraFile)
	if err != nil {
		return nil, err
	}
	for k, p := range extra {
		profiles[k] = p
	}
	return profiles, nil
}

// LoadFile reads extra site profiles from a YAML file of the form:
//
//	sites:
//	  mysite:
//	    title: My Resort
//	    bbox: [43.10, 76.85, 43.25, 77.15]
//	    ...
func LoadFile(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}
	var doc struct {
		Sites map[string]Profile `yaml:"sites"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sites file %s: %w", path, err)
	}
	out := make(map[string]Profile, len(doc.Sites))
	for k, p := range doc.Sites {
		key := strings.ToLower(strings.TrimSpace(k))
		p.Key = key
		if _, err := p.BoundingBox(); err != nil {
			return nil, fmt.Errorf("site %q: %w", key, err)
		}
		out[key] = p
	}
	return out, nil
}

// Get looks a profile up by key, case-insensitively.
func Get(profiles map[string]Profile, key string) (Profile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		keys := make([]string, 0, len(profiles))
		for k := range profiles {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return Profile{}, fmt.Errorf("unknown site %q (known sites: %s)", key, strings.Join(keys, ", "))
	}
	return p, nil
}
