package astro

import (
	"errors"
	"math"
	"testing"
)

// testG is the gravitational constant the rotation curve is evaluated with,
// in kpc (km/s)² / Msun.
const testG = 4.302e-6

func TestHaloInvalidArguments(t *testing.T) {
	tests := []struct {
		name          string
		totalMass     float64
		scaleRadius   float64
		concentration float64
		want          error
	}{
		{"zero mass", 0, 20, 10, ErrNonPositiveMass},
		{"negative mass", -1e12, 20, 10, ErrNonPositiveMass},
		{"zero scale radius", 1e12, 0, 10, ErrNonPositiveRadius},
		{"negative scale radius", 1e12, -20, 10, ErrNonPositiveRadius},
		{"zero concentration", 1e12, 20, 0, ErrNonPositiveConcentration},
	}

	for _, tt := range tests {
		_, err := NewHaloWithConcentration(tt.totalMass, tt.scaleRadius, tt.concentration)
		if err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: error should match ErrInvalidArgument, got %v", tt.name, err)
		}
	}
}

func TestHaloRotationCurveClosedForm(t *testing.T) {
	h, err := NewHalo(1e12, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Recompute the closed form independently:
	//   ρ₀ = M / (4π rₛ³ [ln(1+c) − c/(1+c)])
	//   M(r) = 4π ρ₀ rₛ³ [ln(1+x) − x/(1+x)]
	//   v(r) = sqrt(G M(r) / r)
	rs := 20.0
	c := DefaultConcentration
	r := 40.0
	x := r / rs

	mu := func(x float64) float64 { return math.Log(1+x) - x/(1+x) }
	rho0 := 1e12 / (4 * math.Pi * rs * rs * rs * mu(c))
	enclosed := 4 * math.Pi * rho0 * rs * rs * rs * mu(x)
	expected := math.Sqrt(testG * enclosed / r)

	got := h.RotationCurve(r)
	if relErr := math.Abs(got-expected) / expected; relErr > 1e-6 {
		t.Errorf("expected v(40) = %f km/s, got %f (rel err %g)", expected, got, relErr)
	}
}

func TestHaloEnclosedMassMonotonic(t *testing.T) {
	h, err := NewHalo(1e12, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := 0.0
	for r := 0.5; r <= 400; r += 0.5 {
		m := h.EnclosedMass(r)
		if m < prev {
			t.Fatalf("enclosed mass decreased: M(%f) = %g < %g", r, m, prev)
		}
		prev = m
	}
}

func TestHaloDensityPositiveDecreasing(t *testing.T) {
	h, err := NewHalo(1e12, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := math.Inf(1)
	for r := 0.5; r <= 400; r += 0.5 {
		d := h.Density(r)
		if d <= 0 {
			t.Fatalf("density not positive at r=%f: %g", r, d)
		}
		if d >= prev {
			t.Fatalf("density not strictly decreasing at r=%f: %g >= %g", r, d, prev)
		}
		prev = d
	}
}

func TestHaloDensitySingularity(t *testing.T) {
	h, err := NewHalo(1e12, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !math.IsInf(h.Density(0), 1) {
		t.Errorf("expected +Inf at r=0, got %g", h.Density(0))
	}
	if !math.IsInf(h.Density(-5), 1) {
		t.Errorf("expected +Inf at r=-5, got %g", h.Density(-5))
	}
}

func TestHaloRotationCurvePositive(t *testing.T) {
	h, err := NewHalo(1e12, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range []float64{0.1, 1, 5, 8.5, 20, 40, 80, 200} {
		if v := h.RotationCurve(r); v <= 0 {
			t.Errorf("expected positive velocity at r=%f, got %f", r, v)
		}
	}

	if v := h.RotationCurve(0); v != 0 {
		t.Errorf("expected zero velocity at r=0, got %f", v)
	}
}

func TestHaloTotalMassAtVirialRadius(t *testing.T) {
	h, err := NewHaloWithConcentration(1.5e12, 25, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enclosed := h.EnclosedMass(h.VirialRadius())
	if relErr := math.Abs(enclosed-h.TotalMass) / h.TotalMass; relErr > 1e-9 {
		t.Errorf("enclosed mass at virial radius %g should equal total mass %g (rel err %g)",
			enclosed, h.TotalMass, relErr)
	}
}

func TestHaloCharacteristicDensityScaling(t *testing.T) {
	h1, err := NewHalo(1e12, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := NewHalo(2e12, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ratio := h2.CharacteristicDensity() / h1.CharacteristicDensity()
	if math.Abs(ratio-2) > 1e-12 {
		t.Errorf("doubling total mass should double ρ₀, got ratio %f", ratio)
	}
}
