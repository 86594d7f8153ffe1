package shelf

import (
	"github.com/ValentinKolb/dShelf/cmd/util"
	"github.com/ValentinKolb/dShelf/rpc/client"
	"github.com/spf13/cobra"
)

var (
	rpcShelf client.IShelf

	// ShelfCommands represents the shelf command group
	ShelfCommands = &cobra.Command{
		Use:                "shelf",
		Short:              "Read a shelf served by a dShelf server",
		PersistentPreRunE:  setupShelfClient,
		PersistentPostRunE: closeShelfClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add common RPC flags to the shelf command
	util.SetupRPCClientFlags(ShelfCommands)

	// Add subcommands
	ShelfCommands.AddCommand(tabsCmd)
	ShelfCommands.AddCommand(tabCmd)
	ShelfCommands.AddCommand(booksCmd)
	ShelfCommands.AddCommand(verifyCmd)
	ShelfCommands.AddCommand(formCmd)
	ShelfCommands.AddCommand(libraryCmd)
	ShelfCommands.AddCommand(stampCmd)
	ShelfCommands.AddCommand(cardCmd)
	ShelfCommands.AddCommand(analysisCmd)
	ShelfCommands.AddCommand(perfTestCmd)
}

// setupShelfClient initializes the RPC shelf client
func setupShelfClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration components
	config := util.GetClientConfig()
	shelfId := util.GetShelfID()

	s, err := util.GetSerializer()
	if err != nil {
		return err
	}

	// Create the shelf client
	rpcShelf, err = client.NewRPCShelf(
		shelfId,
		*config,
		util.GetTransport(),
		s,
	)

	return err
}

func closeShelfClient(_ *cobra.Command, _ []string) error {
	if rpcShelf == nil {
		return nil
	}
	return rpcShelf.Close()
}
