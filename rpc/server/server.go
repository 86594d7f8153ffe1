package server

import (
	"context"
	"fmt"
	"time"

	"github.com/ValentinKolb/dShelf/lib/catalog"
	"github.com/ValentinKolb/dShelf/rpc/common"
	"github.com/ValentinKolb/dShelf/rpc/serializer"
	"github.com/ValentinKolb/dShelf/rpc/transport"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
)

var Logger = logger.GetLogger("rpc")

// serverShelf is a struct that represents a shelf in the RPC server
// It contains the catalog index it serves and the adapter
// that handles requests for the catalog
type serverShelf struct {
	Catalog catalog.ICatalog
	Adapter IRPCServerAdapter
}

// NewRPCServer creates a new RPC server
// It takes a config, transport and serializer as parameters
//
// Usage:
//
//	s := server.NewRPCServer(
//		*config,
//		http.NewHttpServerTransport(),
//		serializer.NewJSONSerializer(),
//	)
//
//	if err := s.Serve(ctx); err != nil {
//		panic(err)
//	 }
func NewRPCServer(
	config common.ServerConfig,
	transport transport.IRPCServerTransport,
	serializer serializer.IRPCSerializer,
) rpcServer {
	// Create shelves map
	shelfMap := xsync.NewMapOf[uint64, serverShelf]()

	Logger.Infof("Created RPC Server")
	Logger.Infof("%s", config.String())

	// Create the RPC server
	return rpcServer{
		config:     config,
		transport:  transport,
		serializer: serializer,
		shelves:    shelfMap,
	}
}

type rpcServer struct {
	config     common.ServerConfig
	transport  transport.IRPCServerTransport
	serializer serializer.IRPCSerializer
	shelves    *xsync.MapOf[uint64, serverShelf]
}

// handle decodes a request, lets the adapter of the addressed shelf answer it
// and encodes the response. Failures are reported as error messages, never as panics.
func (s *rpcServer) handle(shelfId uint64, req []byte) []byte {
	var msg common.Message
	var respMsg *common.Message
	start := time.Now()

	// Get appropriate shelf
	shelf, ok := s.shelves.Load(shelfId)

	if !ok {
		// Case shelf does not exist -> error
		respMsg = common.NewErrorResponse(fmt.Sprintf("shelf %d not found", shelfId))
	} else if err := s.serializer.Deserialize(req, &msg); err != nil {
		// Case request can not be decoded -> error
		respMsg = common.NewErrorResponse(fmt.Sprintf("failed to deserialize request: %s", err))
	} else {
		// Let the adapter handle the request
		respMsg = shelf.Adapter.Handle(&msg, shelf.Catalog)
	}

	observeRequest(msg.MsgType, respMsg, start)

	// Return result
	val, err := s.serializer.Serialize(*respMsg)
	if err != nil {
		Logger.Errorf("failed to serialize response for %s: %v", msg.MsgType, err)
		val, _ = s.serializer.Serialize(*common.NewErrorResponse(fmt.Sprintf("failed to serialize response: %s", err)))
	}
	return val
}

// observeRequest records the request in the prometheus metrics
func observeRequest(msgType common.MessageType, resp *common.Message, start time.Time) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`dshelf_rpc_requests_total{type=%q}`, msgType)).Inc()
	if resp.MsgType == common.MsgTError || resp.Err != "" {
		metrics.GetOrCreateCounter(fmt.Sprintf(`dshelf_rpc_errors_total{type=%q}`, msgType)).Inc()
	}
	metrics.GetOrCreateHistogram(fmt.Sprintf(`dshelf_rpc_request_duration_seconds{type=%q}`, msgType)).Update(time.Since(start).Seconds())
}

func (s *rpcServer) registerTransportHandler() {
	s.transport.RegisterHandler(s.handle)
}

func (s *rpcServer) init() error {

	// Init logger
	if err := common.InitLoggers(s.config); err != nil {
		return err
	}

	if len(s.config.Shelves) == 0 {
		return fmt.Errorf("no shelves configured")
	}

	// CREATE SHELVES

	/*
		Note: A single RPC Server can serve any number of shelves. Each shelf is
		an independent catalog index built from its own source. The sources are
		loaded in parallel, the first broken one aborts the start.
	*/

	seen := make(map[uint64]string, len(s.config.Shelves))
	for _, shelfConfig := range s.config.Shelves {
		if other, ok := seen[shelfConfig.ShelfID]; ok {
			return fmt.Errorf("shelf id %d is used by %q and %q", shelfConfig.ShelfID, other, shelfConfig.Source)
		}
		seen[shelfConfig.ShelfID] = shelfConfig.Source
	}

	g := new(errgroup.Group)
	for _, shelfConfig := range s.config.Shelves {
		g.Go(func() error {
			src, err := catalog.Open(shelfConfig.Source)
			if err != nil {
				return fmt.Errorf("shelf %d: %w", shelfConfig.ShelfID, err)
			}
			idx, err := catalog.NewIndex(src)
			if err != nil {
				return fmt.Errorf("shelf %d: %w", shelfConfig.ShelfID, err)
			}

			s.shelves.Store(shelfConfig.ShelfID, serverShelf{
				Catalog: idx,
				Adapter: NewCatalogServerAdapter(),
			})
			Logger.Infof("created shelf %d from %s (%d books)", shelfConfig.ShelfID, shelfConfig.Source, len(idx.AllBooks()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	Logger.Infof("dShelf setup completed successfully")

	// Configure the transport layer
	s.registerTransportHandler()

	return nil
}

// Serve starts the RPC server and blocks until ctx is cancelled.
// This function will also initialize the server plus the shelves and start the transport layer
func (s *rpcServer) Serve(ctx context.Context) error {
	err := s.init()
	if err != nil {
		return err
	}
	return s.transport.Listen(ctx, s.config)
}
