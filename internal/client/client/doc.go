// Package client contains the CLI's connection to the portfolio API.
//
// # Overview
//
// The package provides:
//  1. The Client interface: login, verify, logout, health, content CRUD and
//     image upload.
//  2. HTTPClient, the JSON implementation. Responses arrive in a
//     {success, message, data} envelope; non-2xx answers become *APIError.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite file holding the session.
//
// # Error Handling
//
// Sentinel errors match with errors.Is: ErrUnavailable (network failures and
// ErrTimeout), ErrUnauthorized (HTTP 401) and ErrNotFound (HTTP 404).
package client
