package geo

import "fmt"

// BoundingBox is the rectangular search region for all lookups, in
// (min lat, min lon, max lat, max lon) order.
type BoundingBox struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// NewBoundingBox validates the bounds; min must be strictly below max on
// both axes.
func NewBoundingBox(minLat, minLon, maxLat, maxLon float64) (BoundingBox, error) {
	if minLat >= maxLat {
		return BoundingBox{}, fmt.Errorf("invalid bounding box: min lat %v >= max lat %v", minLat, maxLat)
	}
	if minLon >= maxLon {
		return BoundingBox{}, fmt.Errorf("invalid bounding box: min lon %v >= max lon %v", minLon, maxLon)
	}
	return BoundingBox{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon}, nil
}

func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Viewbox renders the box in Nominatim's west,south,east,north order.
func (b BoundingBox) Viewbox() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", b.MinLat, b.MinLon, b.MaxLat, b.MaxLon)
}
