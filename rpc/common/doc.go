// Package common provides the data structures shared by the dShelf RPC client
// and server.
//
// The package focuses on:
//   - Message protocol definition for client/server communication
//   - Configuration structures for client and server components
//   - Custom logging implementation integrated with the dragonboat logger package
//
// Messages carry one request or response. Requests set MsgType and the fields
// of the operation (Tab, Key, Index, Color), responses carry the result in the
// matching payload field. Catalog failures travel as Err plus the shelf.RetCode
// in Code, so the client can rebuild the original *shelf.Error.
package common
