// Package chain provides a minimal fluent Chain[S, F] for synchronous
// composition of either.Either values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the success value
// - Ensure: trigger side effects without changing the result
// - Or/And: pick between alternative or required chains
// - Finally: reduce to a concrete value via handlers
//
// Same-type steps are methods; steps that change the success type are
// free functions taking the Chain as their first argument.
package chain
