package astro

import (
	"fmt"
	"math"

	"github.com/san-kum/halosim/internal/units"
)

// DefaultConcentration is the virial concentration assumed when a halo is
// constructed without one. c ≈ 10 is typical for galaxy-scale NFW halos.
const DefaultConcentration = 10.0

// Halo is a galactic dark matter halo with an NFW density profile
//
//	ρ(r) = ρ₀ / [(r/rₛ)(1 + r/rₛ)²]
//
// TotalMass (solar masses) is the mass enclosed within the virial radius
// Concentration·ScaleRadius; ρ₀ is derived from that normalization at
// construction. ScaleRadius is in kpc.
type Halo struct {
	TotalMass     float64
	ScaleRadius   float64
	Concentration float64

	rho0 float64 // Msun/kpc³
}

// NewHalo returns a halo with [DefaultConcentration].
func NewHalo(totalMass, scaleRadius float64) (*Halo, error) {
	return NewHaloWithConcentration(totalMass, scaleRadius, DefaultConcentration)
}

// NewHaloWithConcentration validates all three parameters. The concentration
// fixes the finite reference radius the NFW mass integral is normalized to;
// without one the integral diverges logarithmically.
func NewHaloWithConcentration(totalMass, scaleRadius, concentration float64) (*Halo, error) {
	if totalMass <= 0 {
		return nil, fmt.Errorf("halo total mass %g: %w", totalMass, ErrNonPositiveMass)
	}
	if scaleRadius <= 0 {
		return nil, fmt.Errorf("halo scale radius %g: %w", scaleRadius, ErrNonPositiveRadius)
	}
	if concentration <= 0 {
		return nil, fmt.Errorf("halo concentration %g: %w", concentration, ErrNonPositiveConcentration)
	}

	h := &Halo{
		TotalMass:     totalMass,
		ScaleRadius:   scaleRadius,
		Concentration: concentration,
	}
	rs3 := scaleRadius * scaleRadius * scaleRadius
	h.rho0 = totalMass / (4 * math.Pi * rs3 * nfwMu(concentration))
	return h, nil
}

// nfwMu is the dimensionless NFW mass profile, ln(1+x) − x/(1+x).
func nfwMu(x float64) float64 {
	return math.Log(1+x) - x/(1+x)
}

// CharacteristicDensity returns ρ₀ in Msun/kpc³.
func (h *Halo) CharacteristicDensity() float64 {
	return h.rho0
}

// Density returns the NFW density at radius r kpc, in Msun/kpc³.
//
// The profile is singular at the center; for r <= 0 this returns +Inf as a
// deliberate saturating sentinel rather than an error, so callers sampling
// a radius grid can treat the result uniformly as a float.
func (h *Halo) Density(r float64) float64 {
	if r <= 0 {
		return math.Inf(1)
	}
	x := r / h.ScaleRadius
	return h.rho0 / (x * (1 + x) * (1 + x))
}

// EnclosedMass returns the mass in solar masses within radius r kpc:
//
//	M(r) = 4π ρ₀ rₛ³ [ln(1 + r/rₛ) − (r/rₛ)/(1 + r/rₛ)]
//
// Defined as 0 for r <= 0.
func (h *Halo) EnclosedMass(r float64) float64 {
	if r <= 0 {
		return 0
	}
	rs3 := h.ScaleRadius * h.ScaleRadius * h.ScaleRadius
	return 4 * math.Pi * h.rho0 * rs3 * nfwMu(r/h.ScaleRadius)
}

// RotationCurve returns the circular orbital velocity in km/s at radius
// r kpc, v(r) = sqrt(G·M(r)/r). Defined as 0 for r <= 0, the limiting
// value of the NFW curve at the center.
func (h *Halo) RotationCurve(r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(units.G * h.EnclosedMass(r) / r)
}

// VirialRadius returns Concentration·ScaleRadius in kpc.
func (h *Halo) VirialRadius() float64 {
	return h.Concentration * h.ScaleRadius
}

// VirialVelocity returns the rotation velocity at the virial radius.
func (h *Halo) VirialVelocity() float64 {
	return h.RotationCurve(h.VirialRadius())
}

func (h *Halo) String() string {
	return fmt.Sprintf("Halo(total_mass=%.4g Msun, scale_radius=%g kpc, c=%g)",
		h.TotalMass, h.ScaleRadius, h.Concentration)
}
