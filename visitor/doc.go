// Package visitor offers reflection-backed enumerators for structs, slices, arrays and maps.
// Struct fields are visited in declaration order, slices in index order and maps in sorted key order,
// so that every enumeration is deterministic for the same value.
package visitor
