// Package utils provides general-purpose helpers shared by the adapters and
// the store: a preconfigured HTTP client and the deck id generator.
package utils
