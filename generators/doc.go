// Package generators produces a small set of canned example graphs —
// Diagv, Cyclic, Cycle(n), and Sonic(n) — for demos, documentation
// examples, and regression fixtures. Validation follows the same
// sentinel-error, deterministic-emission-order conventions the rest of
// this module uses.
package generators
