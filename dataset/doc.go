// Package dataset provides the example datasets used throughout the
// documentation and tests.
//
// Two access paths exist:
//
//   - Load returns a dataset bundled into the binary. Names lists them.
//   - Fetch downloads a dataset by name from a remote base URL and keeps
//     a compressed copy in the user cache directory, so repeated calls
//     work offline.
//
// The bundled datasets:
//
//   - entregas: delivery times (tempo) against number of boxes (caixas)
//     and distance driven (distancia)
//   - adubo: plant height (altura) against fertilizer type (adubo, a
//     three-level factor) and watering (agua)
package dataset
