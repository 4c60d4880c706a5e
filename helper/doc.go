// Package helper collects small utilities that don't belong anywhere else:
// fixed-width integer conversions, splitting on sets of delimiters and
// call stack introspection.
package helper
