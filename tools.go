//go:build tools

package tools

// This file tracks CLI tool dependencies used via go:generate and the
// Makefile. It is not compiled into the binary.
//
// - github.com/matryer/moq (service-layer mocks)
// - github.com/pressly/goose/v3/cmd/goose (manual migration runs)
