// Package curve samples halo profiles over radius grids and summarizes them.
package curve

import (
	"fmt"
	"math"

	"github.com/san-kum/halosim/internal/astro"
)

// Grid specifies the radii a halo is sampled at, in kpc. When Log is set
// the points are spaced logarithmically between Min and Max.
type Grid struct {
	Min    float64
	Max    float64
	Points int
	Log    bool
}

func (g Grid) validate() error {
	if g.Min <= 0 {
		return fmt.Errorf("curve: grid min %g must be positive", g.Min)
	}
	if g.Max <= g.Min {
		return fmt.Errorf("curve: grid max %g must exceed min %g", g.Max, g.Min)
	}
	if g.Points < 2 {
		return fmt.Errorf("curve: grid needs at least 2 points, got %d", g.Points)
	}
	return nil
}

// Radii returns the sample radii for the grid.
func (g Grid) Radii() []float64 {
	radii := make([]float64, g.Points)
	if g.Log {
		ratio := math.Pow(g.Max/g.Min, 1.0/float64(g.Points-1))
		r := g.Min
		for i := range radii {
			radii[i] = r
			r *= ratio
		}
		radii[g.Points-1] = g.Max
		return radii
	}
	step := (g.Max - g.Min) / float64(g.Points-1)
	for i := range radii {
		radii[i] = g.Min + float64(i)*step
	}
	return radii
}

// Result holds a sampled halo profile. All slices share indexing with Radii.
type Result struct {
	Radii          []float64
	Velocities     []float64
	Densities      []float64
	EnclosedMasses []float64
	Metrics        map[string]float64
}

// Sample evaluates the halo's rotation curve, density profile and enclosed
// mass over the grid and computes summary metrics:
//
//	v_peak       peak rotation velocity (km/s)
//	r_peak       radius of the peak (kpc)
//	v_virial     rotation velocity at the virial radius
//	flatness     velocity at the outermost sample over v_peak
func Sample(h *astro.Halo, g Grid) (*Result, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	radii := g.Radii()
	res := &Result{
		Radii:          radii,
		Velocities:     make([]float64, len(radii)),
		Densities:      make([]float64, len(radii)),
		EnclosedMasses: make([]float64, len(radii)),
		Metrics:        make(map[string]float64),
	}

	vPeak, rPeak := 0.0, radii[0]
	for i, r := range radii {
		v := h.RotationCurve(r)
		res.Velocities[i] = v
		res.Densities[i] = h.Density(r)
		res.EnclosedMasses[i] = h.EnclosedMass(r)
		if v > vPeak {
			vPeak, rPeak = v, r
		}
	}

	res.Metrics["v_peak"] = vPeak
	res.Metrics["r_peak"] = rPeak
	res.Metrics["v_virial"] = h.VirialVelocity()
	if vPeak > 0 {
		res.Metrics["flatness"] = res.Velocities[len(radii)-1] / vPeak
	}
	return res, nil
}
