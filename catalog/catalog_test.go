package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{M31, MilkyWay}, c.Names())

	for _, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			g, err := c.Lookup(name)
			require.NoError(t, err)

			r := g.RadiusKpc()
			v := g.VelocityKms()
			require.Len(t, v, len(r))
			assert.Equal(t, len(r), g.Samples())

			require.NotEmpty(t, r)
			assert.Greater(t, r[0], 0.0)
			for i := 1; i < len(r); i++ {
				assert.Greater(t, r[i], r[i-1], "radius not strictly increasing at %d", i)
			}
		})
	}
}

func TestLookupIsExactAndCaseSensitive(t *testing.T) {
	c := Default()

	for _, name := range []string{"Andromeda", "m31", "milky way", " M31", "M31 ", ""} {
		_, err := c.Lookup(name)
		assert.True(t, errors.Is(err, ErrUnrecognizedGalaxy), "name %q", name)
	}
}

func TestM31Ranges(t *testing.T) {
	g, err := Default().Lookup(M31)
	require.NoError(t, err)

	r := g.RadiusKpc()
	assert.InDelta(t, 0.1, r[0], 1e-12)
	assert.InDelta(t, 40, r[len(r)-1], 1e-12)

	v := g.VelocityKms()
	assert.Equal(t, 0.0, v[0])
	assert.InDelta(t, 230, v[29], 1e-9)
	for _, x := range v[30:] {
		assert.Equal(t, 230.0, x)
	}

	// M(40) = 5e10 * ln(41)
	assert.InDelta(t, 5e10*math.Log(41), g.Mass().Eval(40), 1)
	assert.InDelta(t, 1.86e11, g.Mass().Eval(40), 0.01e11)
}

func TestMilkyWayPlateau(t *testing.T) {
	g, err := Default().Lookup(MilkyWay)
	require.NoError(t, err)

	v := g.VelocityKms()
	require.Len(t, v, 100)
	for i, x := range v[len(v)-70:] {
		assert.Equal(t, 220.0, x, "sample %d", i+30)
	}
	for i := 1; i < 30; i++ {
		assert.Greater(t, v[i], v[i-1])
	}

	r := g.RadiusKpc()
	assert.InDelta(t, 30, r[len(r)-1], 1e-12)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	g, err := c.Lookup(M31)
	require.NoError(t, err)

	r := g.RadiusKpc()
	r[0] = -1
	v := g.VelocityKms()
	v[0] = -1
	names := c.Names()
	names[0] = "X"

	again, err := c.Lookup(M31)
	require.NoError(t, err)
	assert.Greater(t, again.RadiusKpc()[0], 0.0)
	assert.Equal(t, 0.0, again.VelocityKms()[0])
	assert.Equal(t, M31, c.Names()[0])
}

func TestMassLawNonNegativeAndMonotonic(t *testing.T) {
	for _, p := range DefaultProfiles() {
		t.Run(p.Name, func(t *testing.T) {
			prev := p.Mass.Eval(0)
			assert.Equal(t, 0.0, prev)
			for r := 0.0; r <= 100; r += 0.25 {
				m := p.Mass.Eval(r)
				assert.GreaterOrEqual(t, m, 0.0)
				assert.GreaterOrEqual(t, m, prev)
				prev = m
			}
		})
	}
}

func TestMassEnclosedMatchesRadius(t *testing.T) {
	g, err := Default().Lookup(MilkyWay)
	require.NoError(t, err)

	r := g.RadiusKpc()
	m := g.MassEnclosed()
	require.Len(t, m, len(r))
	for i := range r {
		assert.InDelta(t, 4e10*math.Log1p(r[i]), m[i], 1e-3)
	}
}

func TestNewRejectsBadProfiles(t *testing.T) {
	good := DefaultProfiles()[0]

	cases := map[string]Profile{
		"empty name":  {Samples: 10, RadiusMin: 1, RadiusMax: 2},
		"one sample":  {Name: "x", Samples: 1, RadiusMin: 1, RadiusMax: 2},
		"zero radius": {Name: "x", Samples: 10, RadiusMin: 0, RadiusMax: 2},
		"inverted":    {Name: "x", Samples: 10, RadiusMin: 3, RadiusMax: 2},
		"long rise":   {Name: "x", Samples: 10, RadiusMin: 1, RadiusMax: 2, RiseSamples: 11},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New([]Profile{p})
			assert.Error(t, err)
		})
	}

	_, err := New([]Profile{good, good})
	assert.ErrorContains(t, err, "duplicate")
}

func TestLinspace(t *testing.T) {
	assert.Nil(t, Linspace(0, 1, 0))
	assert.Equal(t, []float64{2}, Linspace(2, 5, 1))
	assert.Equal(t, []float64{0, 0.5, 1}, Linspace(0, 1, 3))
}

func TestCompositionShares(t *testing.T) {
	c := Cosmological()
	assert.InDelta(t, 0.356, c.Total(), 1e-12)

	dark, baryon := c.Shares()
	assert.InDelta(t, 100, dark+baryon, 1e-9)
	assert.InDelta(t, 86.52, dark, 0.01)
	assert.InDelta(t, 13.48, baryon, 0.01)

	d, b := Composition{}.Shares()
	assert.Zero(t, d)
	assert.Zero(t, b)
}

func TestMassLawKindString(t *testing.T) {
	assert.Equal(t, "m31", MassLawM31.String())
	assert.Equal(t, "milky-way", MassLawMilkyWay.String())
	assert.Equal(t, "unknown", MassLawUnknown.String())
}
