// Package handlers contains HTTP handlers for the docsite HTTP API.
//
// This package provides handlers for:
//   - Search queries
//   - The navigation tree and individual pages
//   - Health endpoints (monitoring)
//   - Shared response helper functions
//
// Errors are written through the foundation/errors HTTPErrorAdapter; success
// payloads are the types in server/responses.
package handlers
