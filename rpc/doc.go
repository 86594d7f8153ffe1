// Package rpc exposes dShelf catalogs over the network. A single server hosts
// any number of shelves, each an independent catalog index addressed by a
// numeric shelf id.
//
// The package is organized into several subpackages:
//
//   - common: The Message protocol, configuration structures and the
//     dragonboat based logger shared by client and server.
//
//   - transport: Network communication abstractions. The http implementation
//     also serves a health probe and prometheus metrics.
//
//   - serializer: Message serialization (JSON, GOB) for converting between
//     Message objects and byte arrays.
//
//   - client: The IShelf RPC client, which mirrors the catalog operations of a
//     remote shelf.
//
//   - server: The RPC server and the adapter that answers catalog requests.
package rpc
