// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous short-circuiting chains using fn primitives.
//
// It composes Map, FlatMap, Try, Tee, and Finally behind a convenient
// Chain[T, E] type. This enables ergonomic pipelines without dealing directly
// with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - RepeatUntil/While: loop a step while the chain stays successful
// - Or/And: combine alternative or required chains
// - Finally: collapse the chain into a final value via handlers
package chain
