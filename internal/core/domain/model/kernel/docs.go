// Package kernel contains shared value objects used by every aggregate in
// the domain model. It currently holds the UUID identity type.
//
// Kernel types are immutable, validated on construction, and safe to pass
// by value.
package kernel
