package runner

import (
	"math/rand"

	"github.com/vovakirdan/trophy-runner/internal/assets"
	"github.com/vovakirdan/trophy-runner/internal/config"
)

// SpawnPolicy decides when a new object appears and which variant it is.
// The cadence is fixed; only the variant and lane are random.
type SpawnPolicy struct {
	rng     *rand.Rand
	period  int
	field   Playfield
	startY  int
	speed   int
	catalog *assets.Catalog
	nextID  int
}

// NewSpawnPolicy creates a spawn policy with the given RNG seed.
func NewSpawnPolicy(seed int64, field Playfield, cfg config.RunnerConfig, catalog *assets.Catalog) *SpawnPolicy {
	return &SpawnPolicy{
		rng:     rand.New(rand.NewSource(seed)),
		period:  cfg.Spawn.Period,
		field:   field,
		startY:  cfg.Objects.StartY,
		speed:   cfg.Objects.Speed,
		catalog: catalog,
	}
}

// Due reports whether a spawn happens on this frame.
func (p *SpawnPolicy) Due(frame int) bool {
	return frame%p.period == 0
}

// CreateRandom builds an object of a uniformly chosen variant.
func (p *SpawnPolicy) CreateRandom() *ScoringObject {
	// 1..4 map onto the kinds in table order
	return p.Create(Kind(randomInteger(p.rng, 1, int(kindCount)) - 1))
}

// Create builds an object of the given kind in a uniformly chosen lane.
func (p *SpawnPolicy) Create(kind Kind) *ScoringObject {
	lane := Lane(randomInteger(p.rng, 1, laneCount) - 1)
	p.nextID++
	return newScoringObject(
		p.nextID,
		kind,
		lane,
		p.field.LaneX(lane),
		p.startY,
		p.speed,
		p.catalog.Image(kind.Variant().Sprite),
	)
}

// randomInteger returns a uniform integer in [min, max].
// Each outcome has probability 1/(max-min+1); rounding a scaled float would
// halve the odds of both endpoints.
func randomInteger(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}
