package astro

import "fmt"

// Particle is a hypothetical dark matter particle (e.g. a WIMP candidate).
// Mass is conventionally in GeV/c²; position and velocity units are the
// caller's choice and flow unchanged into the derived quantities.
type Particle struct {
	Mass     float64
	Position Vec3
	Velocity Vec3
}

// NewParticle validates the mass and returns an immutable particle.
func NewParticle(mass float64, position, velocity Vec3) (*Particle, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("particle mass %g: %w", mass, ErrNonPositiveMass)
	}
	return &Particle{Mass: mass, Position: position, Velocity: velocity}, nil
}

// KineticEnergy returns 0.5 * m * |v|² in the caller's unit convention.
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * p.Velocity.Norm2()
}

func (p *Particle) Speed() float64 {
	return p.Velocity.Norm()
}

func (p *Particle) Momentum() Vec3 {
	return p.Velocity.Scale(p.Mass)
}

func (p *Particle) String() string {
	return fmt.Sprintf("Particle(mass=%g, pos=(%g, %g, %g), vel=(%g, %g, %g))",
		p.Mass,
		p.Position.X, p.Position.Y, p.Position.Z,
		p.Velocity.X, p.Velocity.Y, p.Velocity.Z,
	)
}

// TotalKineticEnergy sums the kinetic energy of a particle system.
func TotalKineticEnergy(particles []*Particle) float64 {
	total := 0.0
	for _, p := range particles {
		total += p.KineticEnergy()
	}
	return total
}
