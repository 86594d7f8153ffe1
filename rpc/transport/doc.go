// Package transport defines the interfaces for moving serialized RPC messages
// between dShelf clients and servers. Messages are opaque byte slices at this
// layer; every request is addressed to a shelf by its numeric ID.
//
// Key Components:
//
//   - IRPCClientTransport: Client side, manages endpoints and sends requests.
//
//   - IRPCServerTransport: Server side, receives requests and hands them to the
//     registered ServerHandleFunc until its context is cancelled.
//
// The only implementation lives in the http sub package.
package transport
