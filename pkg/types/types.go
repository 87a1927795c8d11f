package types

import "time"

type Bin struct {
	ID        int     `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	FillLevel int     `json:"fill_level"`
}

type Bounds struct {
	MinLon float64
	MaxLon float64
	MinLat float64
	MaxLat float64
}

func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// BinsGenerated is published each time a new generation of bins has been committed.
type BinsGenerated struct {
	Count       int       `json:"count"`
	GeneratedAt time.Time `json:"generatedAt"`
}
