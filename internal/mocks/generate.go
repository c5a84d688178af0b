// Package mocks provides mock implementations for testing against the
// client's ports.
//
// The TokenStore mock is generated with go.uber.org/mock (gomock) and
// checked in so tests build without a codegen step. Hand-written doubles
// for the wider Backend port live in the backend subpackage; they are
// lighter to set up for table tests than expectation-based mocks.
//
// To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mock for TokenStore interface from internal/ports.
// This creates MockTokenStore with Load, Save, Delete.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=token_store_mock.go github.com/smartwave/smartwave-go/internal/ports TokenStore
