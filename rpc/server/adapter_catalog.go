package server

import (
	"fmt"

	"github.com/ValentinKolb/dShelf/lib/analysis"
	"github.com/ValentinKolb/dShelf/lib/assign"
	"github.com/ValentinKolb/dShelf/lib/card"
	"github.com/ValentinKolb/dShelf/lib/catalog"
	"github.com/ValentinKolb/dShelf/lib/shelf"
	"github.com/ValentinKolb/dShelf/rpc/common"
)

func NewCatalogServerAdapter() IRPCServerAdapter {
	return &catalogServerAdapterImpl{}
}

type catalogServerAdapterImpl struct{}

func (adapter *catalogServerAdapterImpl) Handle(req *common.Message, idx catalog.ICatalog) *common.Message {
	// Check for nil catalog
	if idx == nil {
		return common.NewErrorResponse("handler: catalog is nil")
	}

	// Handle different message types
	switch req.MsgType {
	case common.MsgTTab:
		return common.NewTabResponse(idx.BooksForTab(req.Tab).View())
	case common.MsgTAllBooks:
		return common.NewAllBooksResponse(idx.AllBooks())
	case common.MsgTTabs:
		return common.NewTabsResponse(idx.Tabs())
	case common.MsgTVerify:
		return common.NewVerifyResponse(idx.Verify())
	case common.MsgTFormNumber:
		return common.NewFormNumberResponse(idx.BooksForTab(req.Tab).FormNumber(req.Index))
	case common.MsgTAssignLibrary:
		lib, err := assign.Library(req.Key, idx.Libraries())
		return common.NewAssignLibraryResponse(lib, err)
	case common.MsgTStamp:
		return common.NewStampResponse(assign.NewStamp(req.Key), assign.ColorClass(req.Color))
	case common.MsgTCard:
		c := idx.BooksForTab(req.Tab)
		if req.Index < 0 || req.Index >= len(c.Books) {
			return common.NewCardResponse(card.Card{}, false)
		}
		return common.NewCardResponse(card.New(c.Books[req.Index], c.FormNumber(req.Index), c.Tab, idx.Libraries()), true)
	case common.MsgTAnalysis:
		return common.NewAnalysisResponse(analysis.New(idx))
	default:
		return common.NewShelfErrorResponse(shelf.NewError(
			shelf.RetCInvalidInput,
			fmt.Sprintf("RPC CatalogAdapter - Unsupported message type: %s", req.MsgType),
		))
	}
}
