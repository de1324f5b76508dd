// Package conv provides checked conversions between positions and handles.
//
// A position is Go's native int index into the value store. A handle is any
// fixed-width integer chosen by the caller. Conversions in both directions
// are bounds checked so that a position which does not fit the handle type
// is reported instead of silently truncated.
//
// Use cases:
//   - Issuing a handle for a freshly appended position (ToHandle)
//   - Decoding a caller-supplied, possibly stale handle (FromHandle)
//   - Validating a handle type against the platform int at construction (Width)
//
// For conversions that are provably safe by construction (e.g., re-encoding
// a position that is below the current length), use direct type casts instead
// to avoid overhead.
package conv
