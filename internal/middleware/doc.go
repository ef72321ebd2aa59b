// Package middleware provides decorators that wrap the app's collaborators
// with cross-cutting behavior such as logging and metrics.
package middleware
