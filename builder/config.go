// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"

	"github.com/routeweave/multimodal/road"
)

// defaultSectionLength is the length, in meters, every generated section
// gets unless WithSectionLength overrides it.
const defaultSectionLength = 1.0

// lengthJitterFraction bounds the per-section length perturbation applied
// when a seed is set, as a fraction of the configured section length.
const lengthJitterFraction = 0.1

// builderConfig holds the resolved, immutable settings a Constructor
// reads while building a fixture. It is never mutated after
// newBuilderConfig returns.
type builderConfig struct {
	// dbidOffset is added to every generated node's DBID, so multiple
	// fixtures can be composed into one road.Graph without colliding
	// database identities.
	dbidOffset int64

	// sectionLength is the LengthMeters every generated section gets.
	sectionLength float64

	// roadClass is the RoadClass every generated section gets.
	roadClass road.RoadClass

	// rng, when set via WithSeed, jitters each section's length by up to
	// lengthJitterFraction so fixtures can look less uniform without
	// losing reproducibility. nil means no jitter.
	rng *rand.Rand
}

// BuilderOption configures a builderConfig.
type BuilderOption func(*builderConfig)

// WithDBIDOffset shifts every generated node's DBID by offset.
func WithDBIDOffset(offset int64) BuilderOption {
	return func(c *builderConfig) {
		c.dbidOffset = offset
	}
}

// WithSectionLength overrides the length, in meters, of every generated
// section.
func WithSectionLength(meters float64) BuilderOption {
	return func(c *builderConfig) {
		c.sectionLength = meters
	}
}

// WithRoadClass sets the RoadClass assigned to every generated section.
func WithRoadClass(rc road.RoadClass) BuilderOption {
	return func(c *builderConfig) {
		c.roadClass = rc
	}
}

// WithSeed seeds a deterministic RNG used to jitter section lengths, so
// repeated runs with the same seed produce byte-identical fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		sectionLength: defaultSectionLength,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// sectionLengthFor returns the length to use for the next generated
// section: cfg.sectionLength, jittered deterministically if a seed was
// set.
func (c *builderConfig) sectionLengthFor() float64 {
	if c.rng == nil {
		return c.sectionLength
	}

	jitter := (c.rng.Float64()*2 - 1) * lengthJitterFraction * c.sectionLength

	return c.sectionLength + jitter
}
