// Package cosmo holds cosmology reference data displayed by the CLI.
package cosmo

// Composition is the estimated energy/matter breakdown of the universe,
// in percent (Planck 2013 values).
type Composition struct {
	DarkEnergy     float64
	DarkMatter     float64
	OrdinaryMatter float64
}

func UniverseComposition() Composition {
	return Composition{
		DarkEnergy:     68.3,
		DarkMatter:     26.8,
		OrdinaryMatter: 4.9,
	}
}

// Total returns the sum of all components in percent.
func (c Composition) Total() float64 {
	return c.DarkEnergy + c.DarkMatter + c.OrdinaryMatter
}

// WIMP describes the Weakly Interacting Massive Particle dark matter
// candidate.
type WIMP struct {
	MassRange   string
	Interaction string
	Stability   string
	Detection   string
}

func WIMPProperties() WIMP {
	return WIMP{
		MassRange:   "10 GeV/c² to 10 TeV/c²",
		Interaction: "Weak nuclear force",
		Stability:   "Stable or very long-lived",
		Detection:   "Direct detection experiments, indirect detection, collider searches",
	}
}
