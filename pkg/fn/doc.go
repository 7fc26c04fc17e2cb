// Package fn is a small generic composition toolkit: forward application
// (Pipe), forward composition (Compose), and a two-variant Result container
// with Map/FlatMap.
//
// The three pieces are independent. Pipe and Compose are pure glue over
// single-argument functions; Result[T, E] holds either a success value or a
// caller-chosen failure payload, and its combinators short-circuit on the
// first failure so a chain never runs past the point it broke.
//
// Key operations:
// - Pipe/Pipe2/Pipe3: apply a value to functions, left to right
// - Compose/Compose3/ComposeErr/ComposeResult: combine functions, left to right
// - Success/Failure: construct a Result
// - Map/FlatMap/MapFailure: transform a Result
// - Tee/DoubleTee/Finally: side effects and final collapse
// - Try/FromTuple/Validate/ValidateAll: bridge (value, error) style code
package fn
