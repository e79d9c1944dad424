// Package rop defines Result[T, E], a value holding either a success (Ok) or
// a failure (Err), and Option[T], its companion for values that may be absent.
//
// Results are immutable. Combinators that change T or E live in package solo;
// fluent context-carrying pipelines live in package chain.
//
// Extracting from the wrong variant (Unwrap on Err, UnwrapErr on Ok, and the
// Expect forms) is a programming error and panics with *ExtractError. Guard
// with IsOk/IsErr or use UnwrapOr, UnwrapOrElse and solo.Match instead.
//
// FromCallback, FromVoidCallback, FromAsync and FromVoidAsync turn panics and
// returned errors at a call boundary into Err(Option[Unexpected]).
package rop
