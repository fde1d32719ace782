// Package shadermodule implements the shader module collaborator the
// linker depends on: functions, globals, resources, and the def-use
// graph between them.
//
// The instruction set and type system are intentionally minimal — the
// shader intermediate representation itself is out of scope for the
// linker (see the module-level design notes); this package exists only
// to give the linker a concrete module to read from and write into.
package shadermodule
