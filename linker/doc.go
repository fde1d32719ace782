// Package linker implements a shader-library linker: it resolves and
// merges independently compiled shader libraries into a single
// executable shader module targeting a given profile.
//
// # Main Types
//
//   - Linker: owns registered libraries, the cross-library symbol
//     registry, and the intrinsic cache
//   - Library: one registered compilation unit, indexed at registration
//     time
//
// # Thread Safety
//
// Linker is safe for concurrent use; distinct Linker instances are
// independent.
//
// # Example
//
//	l := linker.NewWithDefaults()
//	l.RegisterLib("mylib", module, nil)
//	l.AttachLib("mylib")
//	out, ok := l.Link("main", "ps_6_0")
package linker
