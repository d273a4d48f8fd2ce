// Package common contains shared constants and sentinel errors used across
// the portfolio server and the folio client.
package common

// AuthorizationHeader carries the bearer token on admin requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix precedes the token inside AuthorizationHeader.
const BearerPrefix = "Bearer "

// RoleAdmin is the only role issued by the server.
const RoleAdmin = "admin"
