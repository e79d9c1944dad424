// Package core carries configuration for the rop adapters through
// context.Context. It holds no Result logic of its own; packages read their
// options with the Get/Is helpers and fall back to the supplied defaults.
package core
