// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Every step receives the chain's context. Once a step yields an Err the
// remaining Then/Map/Ensure steps are skipped until Recover or Finally.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to Err
// - Map/MapErr: transform either side
// - Recover: turn an Err back into a Result
// - Ensure/Validate: side effects and checks on the Ok value
// - RepeatUntil/While: loop a same-type step until a condition fails
// - Finally: collapse the chain into a final value via handlers
package chain
