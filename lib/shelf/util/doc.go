// Package util provides the hash functions used across dShelf.
//
// The package contains:
//   - HashString32: the 32-bit polynomial rolling hash (h*31 + c) used for every
//     deterministic display assignment (library, stamp offset, rotation, font)
//   - Bucket: abs(hash) mod n without the min-int32 overflow
//   - HashString: seeded FNV-1a used to derive numeric shelf IDs from names
//
// HashString32 is part of the observable behaviour: changing it reshuffles every
// library assignment and stamp placement, so it is pinned by tests against
// known String.hashCode values.
package util
