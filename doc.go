// Rewrite the method tables of classes built on top of a base type
//
// Go has no inheritance, but embedding gets close enough to be a problem: a
// type that embeds a mutable sequence gets all of its methods, and every one
// of them that produces a new sequence hands back the embedded type instead
// of the outer one. This package models classes as explicit method tables
// (see [Class]) and provides rewriters that patch those tables once, at
// package initialization:
//
//   - [Inherit] wraps every inherited instance method so results of the base
//     type are reconstructed as the subclass.
//   - [Immutify] turns in-place mutators into methods that work on a clone
//     and return it.
//   - [LogCalls] logs calls and results of selected methods.
//
// Every rewriter can be applied bare (Apply) or configured (With).
//
// Limitations:
//   - Single inheritance only. A subclass type must embed its base type as
//     the first field.
//   - Classes must be constructible without arguments to be classified.
//   - Rewriting a class is not safe while other goroutines call through it.
package reclass
