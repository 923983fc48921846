// Package config loads application configuration from environment variables
// into typed structs, with every integer field decoded by strto.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Decodes fields of kind int, int8 ... uint64 with radix.ParseAuto, so
//     values may be written as 8080, 0x1F90, 0o17720 or 0b1111110010000 and are
//     range checked against the exact field width.
//   - Decodes radix.Int fields in their fixed base through
//     encoding.TextUnmarshaler.
//   - Caches each successfully loaded configuration type so it is only parsed
//     once for the lifetime of the process.
//   - Exposes helpers that panic on failure (`MustLoadEnv`, `MustLoad`).
//   - Allows explicit cache reset or force reload which is handy in tests.
//
// # Usage
//
//	type ServerConfig struct {
//	    Port  uint16                        `env:"PORT" envDefault:"8080"`
//	    Umask uint32                        `env:"UMASK" envDefault:"0o022"`
//	    Salt  radix.Int[uint64, radix.Hex]  `env:"SALT,required"`
//	}
//
//	func main() {
//	    if err := config.LoadEnv("./config/.env"); err != nil {
//	        log.Fatalf("loading env: %v", err)
//	    }
//
//	    var srv ServerConfig
//	    if err := config.Load(&srv); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// PORT=70000 fails instead of wrapping around: the error joins
// ErrParsingConfig with the env error, whose message carries the strto
// failure ("conversion failure: out of bounds: integer too big").
//
// Named integer types (for example `type Port uint16`) keep the env library's
// decimal parsing; wrap them in radix.Int to opt into another base.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`: failed to parse env vars into struct.
//   - `ErrInvalidConfigType`: provided value is not a pointer to a struct.
//   - `ErrConfigNotLoaded`: a concurrent load of the same type failed.
//   - `ErrNilPointer`: nil pointer passed to `Load`/`MustLoad`.
//
// # Testing Helpers
//
// Use `ResetCache()` to clear the global cache between tests or
// `ForceReloadConfig(&cfg)` to reload a particular struct after the process
// environment changes.
package config
