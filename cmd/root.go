package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/dShelf/cmd/serve"
	"github.com/ValentinKolb/dShelf/cmd/shelf"
	"github.com/ValentinKolb/dShelf/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "dshelf",
		Short: "personal library showcase",
		Long: fmt.Sprintf(`dShelf (v%s)

Serves a personal book catalog as a shelf of library cards. Every book is
stamped by the library it was borrowed from, assigned deterministically from
its title, and numbered per tab.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dShelf",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dShelf v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(shelf.ShelfCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("serializer to use (json, gob)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
