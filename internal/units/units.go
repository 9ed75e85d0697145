// Package units fixes the unit convention shared by the halo model and the
// CLI: masses in solar masses, radii in kiloparsecs, velocities in km/s.
// Densities come out in solar masses per cubic kiloparsec.
package units

const (
	// G is the gravitational constant in kpc (km/s)² / Msun.
	G = 4.302e-6

	// KmPerKpc converts kiloparsecs to kilometers.
	KmPerKpc = 3.0857e16

	// KgPerSolarMass converts solar masses to kilograms.
	KgPerSolarMass = 1.989e30

	// GeVPerKg converts kilograms to GeV/c².
	GeVPerKg = 5.6096e26

	// GeVPerCm3PerMsunPerKpc3 converts Msun/kpc³ to GeV/cm³, the unit
	// direct-detection experiments quote the local dark matter density in.
	GeVPerCm3PerMsunPerKpc3 = 3.797e-8
)

// DensityToGeVPerCm3 converts a density from Msun/kpc³ to GeV/cm³.
func DensityToGeVPerCm3(rho float64) float64 {
	return rho * GeVPerCm3PerMsunPerKpc3
}

// KpcToKm converts a radius from kiloparsecs to kilometers.
func KpcToKm(r float64) float64 {
	return r * KmPerKpc
}
