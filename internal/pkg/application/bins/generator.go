package bins

import (
	"math/rand"

	"github.com/diwise/waste-bin-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/diwise/waste-bin-mgmt/pkg/types"
)

const (
	MinFillLevel int = 0
	MaxFillLevel int = 100
)

var Berlin = types.Bounds{
	MinLat: 52.33,
	MaxLat: 52.67,
	MinLon: 13.09,
	MaxLon: 13.76,
}

type GeneratorFunc func(count int) []database.Bin

// NewRandomGenerator returns a generator placing bins uniformly within bounds, each with
// a uniformly drawn fill level in [MinFillLevel, MaxFillLevel]. Every call yields an independent batch.
func NewRandomGenerator(bounds types.Bounds) GeneratorFunc {
	return func(count int) []database.Bin {
		bins := make([]database.Bin, 0, count)

		for i := 0; i < count; i++ {
			bins = append(bins, database.Bin{
				Latitude:  uniform(bounds.MinLat, bounds.MaxLat),
				Longitude: uniform(bounds.MinLon, bounds.MaxLon),
				FillLevel: MinFillLevel + rand.Intn(MaxFillLevel-MinFillLevel+1),
			})
		}

		return bins
	}
}

func uniform(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}
