// Package diffusion spreads scalar energy across a bounded 2D grid one time
// step at a time.
//
// Two strategies share the same lagged/working buffer protocol:
//
//   - Continuous moves float64 energy into a boundary-anchored patch
//     (2x2 at corners, 2x3 on the top and bottom rows, 3x2 on the left and
//     right columns, 3x3 elsewhere) using freshly drawn normalized weights.
//     Total energy is conserved up to floating-point rounding.
//   - Discrete moves indivisible units. With probability heat a cell hands its
//     units to its clipped Moore neighbourhood, itself included; truncation
//     leftovers go to one neighbour picked uniformly at random. Cells that do
//     not diffuse lose their units for that step.
//
// After every step the working grid is copied into the lagged grid and zeroed.
// All randomness comes from an explicit core.Source.
package diffusion
