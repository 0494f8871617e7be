// Package observability builds the structured diagnostic logger used by
// alertgen. Logs are ECS-compatible JSON written to stderr so they never mix
// with the console output on stdout.
package observability
