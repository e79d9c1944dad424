// Package solo contains the single-value, synchronous combinators over
// rop.Result[T, E]. They are free functions because Go methods cannot
// introduce type parameters, so anything that changes T or E lives here.
//
// Highlights:
// - Map/MapErr/MapOr/MapOrElse: transform one side of a Result
// - And/AndThen/Or/OrElse: sequence or recover, short-circuiting on the other side
// - Match: reduce to a value via exactly one branch
// - Transpose/Flatten: reshape nested Option and Result values
// - FromPair/ToPair/Try/Validate: bridge (value, error) returns
// - Tee/TeeIf/DoubleTee: side-effect helpers
package solo
