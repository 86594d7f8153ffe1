package server

import (
	"github.com/ValentinKolb/dShelf/lib/catalog"
	"github.com/ValentinKolb/dShelf/rpc/common"
)

// IRPCServerAdapter is the interface for all RPC server adapters
// It is responsible for handling requests and responses
type IRPCServerAdapter interface {
	// Handle handles a request against the catalog of a shelf and returns a response.
	// If an error occurs, it should be set in the response
	Handle(req *common.Message, idx catalog.ICatalog) (resp *common.Message)
}
