// Package puzzle ties the daily solvers together: a Registry of Solutions
// keyed by day, a Loader that fetches example or real input, and a Runner
// that executes parts and times them.
//
// Solvers never depend on this package; they only have to expose
// functions of type Part.
package puzzle
