package client

import (
	"github.com/ValentinKolb/dShelf/lib/analysis"
	"github.com/ValentinKolb/dShelf/lib/assign"
	"github.com/ValentinKolb/dShelf/lib/card"
	"github.com/ValentinKolb/dShelf/lib/catalog"
	"github.com/ValentinKolb/dShelf/lib/shelf"
	"github.com/ValentinKolb/dShelf/rpc/common"
	"github.com/ValentinKolb/dShelf/rpc/serializer"
	"github.com/ValentinKolb/dShelf/rpc/transport"
)

// NewRPCShelf creates a new RPC shelf client
// The function takes a shelf ID, a config, a transport and a serializer as parameters
// It returns an IShelf and an error
func NewRPCShelf(
	shelfId uint64,
	config common.ClientConfig,
	transport transport.IRPCClientTransport,
	serializer serializer.IRPCSerializer,
) (IShelf, error) {

	// Connect the transport
	err := transport.Connect(config)
	if err != nil {
		return nil, err
	}

	// Create a new RPC shelf
	s := rpcShelf{
		rpcClientAdapter{
			shelfId:    shelfId,
			config:     config,
			transport:  transport,
			serializer: serializer,
		},
	}

	Logger.Debugf("connected to shelf %d via %s (%s)", shelfId, config.Endpoints, serializer.Name())

	// Return the RPC shelf
	return &s, nil
}

type rpcShelf struct {
	rpcClientAdapter
}

// --------------------------------------------------------------------------
// Interface Methods (docu see client.IShelf)
// --------------------------------------------------------------------------

func (s *rpcShelf) BooksForTab(tab string) (catalog.TabView, error) {
	resp, err := invokeRPCRequest(s.shelfId, common.NewTabRequest(tab), s.transport, s.serializer)
	if err != nil {
		return catalog.TabView{}, err
	}
	if resp.Collection == nil {
		return catalog.TabView{Tab: tab, Entries: []catalog.TabEntry{}}, nil
	}
	return *resp.Collection, nil
}

func (s *rpcShelf) AllBooks() ([]shelf.Book, error) {
	resp, err := invokeRPCRequest(s.shelfId, common.NewAllBooksRequest(), s.transport, s.serializer)
	if err != nil {
		return nil, err
	}
	return resp.Books, nil
}

func (s *rpcShelf) Tabs() ([]string, error) {
	resp, err := invokeRPCRequest(s.shelfId, common.NewTabsRequest(), s.transport, s.serializer)
	if err != nil {
		return nil, err
	}
	return resp.Tabs, nil
}

func (s *rpcShelf) Verify() (catalog.Report, error) {
	resp, err := invokeRPCRequest(s.shelfId, common.NewVerifyRequest(), s.transport, s.serializer)
	if err != nil {
		return catalog.Report{}, err
	}
	if resp.Report == nil {
		return catalog.Report{}, nil
	}
	return *resp.Report, nil
}

func (s *rpcShelf) FormNumber(tab string, index int) (string, error) {
	resp, err := invokeRPCRequest(s.shelfId, common.NewFormNumberRequest(tab, index), s.transport, s.serializer)
	if err != nil {
		return "", err
	}
	return resp.Value, nil
}

func (s *rpcShelf) AssignLibrary(title string) (shelf.Library, error) {
	resp, err := invokeRPCRequest(s.shelfId, common.NewAssignLibraryRequest(title), s.transport, s.serializer)
	if err != nil {
		return shelf.Library{}, err
	}
	if resp.Library == nil {
		return shelf.Library{}, nil
	}
	return *resp.Library, nil
}

func (s *rpcShelf) Stamp(date string, color shelf.StampColor) (assign.Stamp, string, error) {
	resp, err := invokeRPCRequest(s.shelfId, common.NewStampRequest(date, color), s.transport, s.serializer)
	if err != nil {
		return assign.Stamp{}, "", err
	}
	if resp.Stamp == nil {
		return assign.Stamp{Date: date}, resp.Value, nil
	}
	return *resp.Stamp, resp.Value, nil
}

func (s *rpcShelf) Card(tab string, index int) (card.Card, bool, error) {
	resp, err := invokeRPCRequest(s.shelfId, common.NewCardRequest(tab, index), s.transport, s.serializer)
	if err != nil {
		return card.Card{}, false, err
	}
	if !resp.Ok || resp.Card == nil {
		return card.Card{}, false, nil
	}
	return *resp.Card, true, nil
}

func (s *rpcShelf) Analysis() (analysis.Report, error) {
	resp, err := invokeRPCRequest(s.shelfId, common.NewAnalysisRequest(), s.transport, s.serializer)
	if err != nil {
		return analysis.Report{}, err
	}
	if resp.Analysis == nil {
		return analysis.Report{}, nil
	}
	return *resp.Analysis, nil
}

func (s *rpcShelf) Close() error {
	return s.transport.Close()
}
