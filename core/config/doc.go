// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/typedmultipart/core/config"
//
//	var limits partmap.Config
//	if err := config.Load(&limits); err != nil {
//		log.Fatal(err)
//	}
//
//	bind := binder.Multipart(limits.Options()...)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 partmap.Config
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 partmap.Config
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so the generator and the HTTP
// binder can each keep their own settings struct.
package config
