// Package astro provides the dark matter models at the core of halosim.
//
// Two independent value types are defined:
//
//   - [Particle]: a hypothetical dark matter particle with mass and
//     kinematic state, exposing derived quantities such as kinetic energy
//   - [Halo]: a galactic dark matter halo following the Navarro-Frenk-White
//     (NFW) density profile, exposing density, enclosed mass and circular
//     rotation velocity as pure functions of radius
//
// Both types are immutable after construction, so they are safe for
// concurrent reads without locking.
//
// # Units
//
// Halo quantities use the galactic convention fixed in [units]: masses in
// solar masses, radii in kiloparsecs, velocities in km/s. Particle masses
// are conventionally in GeV/c² with velocities in whatever units the caller
// supplies; KineticEnergy performs no unit conversion.
//
// # Example
//
//	halo, err := astro.NewHalo(1e12, 20)
//	if err != nil {
//	    return err
//	}
//	v := halo.RotationCurve(8.5) // km/s at the solar radius
package astro
