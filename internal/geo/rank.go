package geo

import (
	"sort"
	"strings"
)

// osmElement is one element of an Overpass response.
type osmElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *osmCenter        `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type osmCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassResponse struct {
	Elements []osmElement `json:"elements"`
}

func (el osmElement) displayName() string {
	if n := el.Tags["name"]; n != "" {
		return n
	}
	return el.Tags["name:en"]
}

// coords returns the element's own point or its computed center.
func (el osmElement) coords() (lat, lon float64, ok bool) {
	if el.Lat != nil && el.Lon != nil {
		return *el.Lat, *el.Lon, true
	}
	if el.Center != nil {
		return el.Center.Lat, el.Center.Lon, true
	}
	return 0, 0, false
}

// scoreElement prefers exact name matches and real aerialway features over
// bare station stops, and richer geometry over single nodes.
func scoreElement(el osmElement, needleLower string) int {
	aw := el.Tags["aerialway"]
	score := 0
	if strings.ToLower(el.displayName()) == needleLower {
		score += 5
	}
	if aw != "" && aw != "station" {
		score += 3
	}
	if aw == "station" || el.Tags["public_transport"] == "station" {
		score++
	}
	switch el.Type {
	case "relation":
		score += 2
	case "way":
		score++
	}
	return score
}

// rankElements orders candidates best first. The sort is stable so upstream
// order breaks ties.
func rankElements(els []osmElement, query string) []osmElement {
	needle := strings.ToLower(query)
	type scored struct {
		el    osmElement
		score int
	}
	items := make([]scored, len(els))
	for i, el := range els {
		items[i] = scored{el: el, score: scoreElement(el, needle)}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].score > items[j].score })
	ranked := make([]osmElement, len(items))
	for i, it := range items {
		ranked[i] = it.el
	}
	return ranked
}
