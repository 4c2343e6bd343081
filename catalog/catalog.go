// Package catalog holds the fixed galaxy dataset plotted by galaxyplot.
//
// The catalog is built once at startup and is read-only afterwards. Every
// accessor returns copies, so a caller can never change what the next caller
// sees.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnrecognizedGalaxy is returned by Lookup for names outside the catalog.
var ErrUnrecognizedGalaxy = errors.New("galaxy not recognized")

// Catalog keys.
const (
	M31      = "M31"
	MilkyWay = "Milky Way"
)

// Galaxy is one simulated galaxy: radius samples, matching rotational velocity
// samples and an enclosed-mass law.
type Galaxy struct {
	name     string
	radius   []float64
	velocity []float64
	mass     MassLaw
}

// Name returns the catalog key.
func (g Galaxy) Name() string { return g.name }

// RadiusKpc returns a copy of the radius samples in kiloparsecs.
func (g Galaxy) RadiusKpc() []float64 { return cloneFloats(g.radius) }

// VelocityKms returns a copy of the rotational velocity samples in km/s.
func (g Galaxy) VelocityKms() []float64 { return cloneFloats(g.velocity) }

// Mass returns the enclosed-mass law.
func (g Galaxy) Mass() MassLaw { return g.mass }

// MassEnclosed evaluates the mass law at every radius sample.
func (g Galaxy) MassEnclosed() []float64 { return g.mass.EvalAll(g.radius) }

// Samples returns the number of radius (and velocity) samples.
func (g Galaxy) Samples() int { return len(g.radius) }

// Profile describes how a Galaxy's samples are generated.
type Profile struct {
	Name string

	RadiusMin float64
	RadiusMax float64
	Samples   int

	// RiseSamples is the number of leading samples over which the velocity
	// climbs linearly from zero to Plateau (inclusive of both ends).
	RiseSamples int
	Plateau     float64

	Mass MassLaw
}

// Build samples the profile into a Galaxy.
func (p Profile) Build() (Galaxy, error) {
	if p.Name == "" {
		return Galaxy{}, errors.New("catalog: empty galaxy name")
	}
	if p.Samples < 2 {
		return Galaxy{}, fmt.Errorf("catalog: %s: need at least 2 samples, got %d", p.Name, p.Samples)
	}
	if !(p.RadiusMin > 0) || p.RadiusMax <= p.RadiusMin {
		return Galaxy{}, fmt.Errorf("catalog: %s: invalid radius range %g..%g", p.Name, p.RadiusMin, p.RadiusMax)
	}
	if p.RiseSamples < 0 || p.RiseSamples > p.Samples {
		return Galaxy{}, fmt.Errorf("catalog: %s: rise samples %d out of range", p.Name, p.RiseSamples)
	}

	velocity := make([]float64, 0, p.Samples)
	velocity = append(velocity, Linspace(0, p.Plateau, p.RiseSamples)...)
	for len(velocity) < p.Samples {
		velocity = append(velocity, p.Plateau)
	}

	return Galaxy{
		name:     p.Name,
		radius:   Linspace(p.RadiusMin, p.RadiusMax, p.Samples),
		velocity: velocity,
		mass:     p.Mass,
	}, nil
}

// DefaultProfiles returns the simulated datasets for the catalog galaxies.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name:        M31,
			RadiusMin:   0.1,
			RadiusMax:   40,
			Samples:     100,
			RiseSamples: 30,
			Plateau:     230,
			Mass:        MassLaw{Kind: MassLawM31, Scale: 5e10},
		},
		{
			Name:        MilkyWay,
			RadiusMin:   0.1,
			RadiusMax:   30,
			Samples:     100,
			RiseSamples: 30,
			Plateau:     220,
			Mass:        MassLaw{Kind: MassLawMilkyWay, Scale: 4e10},
		},
	}
}

// Catalog is an immutable set of galaxies keyed by name.
type Catalog struct {
	byName map[string]Galaxy
	names  []string
}

// New builds a catalog from profiles. Duplicate names are rejected.
func New(profiles []Profile) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Galaxy, len(profiles))}
	for _, p := range profiles {
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate galaxy %q", p.Name)
		}
		g, err := p.Build()
		if err != nil {
			return nil, err
		}
		c.byName[p.Name] = g
		c.names = append(c.names, p.Name)
	}
	sort.Strings(c.names)
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(DefaultProfiles())
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the galaxy with exactly this name. Matching is
// case-sensitive; callers trim input first.
func (c *Catalog) Lookup(name string) (Galaxy, error) {
	g, ok := c.byName[name]
	if !ok {
		return Galaxy{}, fmt.Errorf("%w: %q", ErrUnrecognizedGalaxy, name)
	}
	return g, nil
}

// Names returns the catalog keys in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of galaxies.
func (c *Catalog) Len() int { return len(c.names) }

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

func cloneFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
