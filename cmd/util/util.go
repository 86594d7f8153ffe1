package util

import (
	"fmt"
	"strconv"
	"strings"

	shelfUtil "github.com/ValentinKolb/dShelf/lib/shelf/util"
	"github.com/ValentinKolb/dShelf/rpc/common"
	"github.com/ValentinKolb/dShelf/rpc/serializer"
	"github.com/ValentinKolb/dShelf/rpc/transport"
	"github.com/ValentinKolb/dShelf/rpc/transport/http"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// EnvPrefix is the prefix of all environment variables read by dshelf
	EnvPrefix = "dshelf"
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		if lineWidth > 0 && lineWidth+1+len(word) > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteByte(' ')
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += len(word)
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupRPCClientFlags adds common RPC connection flags to a command
func SetupRPCClientFlags(cmd *cobra.Command) {
	key := "timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("The timeout in seconds of the client"))

	key = "endpoints"
	cmd.PersistentFlags().String(key, "http://localhost:8080", WrapString("The address of the dShelf server. Multiple endpoints can be specified as a comma-separated list, requests are balanced round-robin"))

	key = "conn-per-endpoint"
	cmd.PersistentFlags().Int(key, 1, WrapString("Idle connections kept open per endpoint"))

	key = "retries"
	cmd.PersistentFlags().Int(key, 3, WrapString("How many times to try a request, every attempt goes to the next endpoint"))

	key = "shelf"
	cmd.PersistentFlags().String(key, "100", WrapString("ID of the shelf to connect to. Names that are not a number are hashed to an ID"))
}

// InitConfig loads the .env files and makes viper read DSHELF_* environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() *common.ClientConfig {
	var endpoints []string
	for _, e := range strings.Split(viper.GetString("endpoints"), ",") {
		if e = strings.TrimSpace(e); e != "" {
			endpoints = append(endpoints, e)
		}
	}

	return &common.ClientConfig{
		Endpoints:              endpoints,
		TimeoutSecond:          viper.GetInt("timeout"),
		RetryCount:             viper.GetInt("retries"),
		ConnectionsPerEndpoint: viper.GetInt("conn-per-endpoint"),
	}
}

// GetSerializer creates a serializer based on configuration
func GetSerializer() (serializer.IRPCSerializer, error) {
	name := viper.GetString("serializer")
	s, ok := serializer.New(name)
	if !ok {
		return nil, fmt.Errorf("invalid serializer %s (expected json or gob)", name)
	}
	return s, nil
}

// GetTransport creates the client transport
func GetTransport() transport.IRPCClientTransport {
	return http.NewHttpClientTransport()
}

// GetShelfID retrieves the configured shelf ID
func GetShelfID() uint64 {
	return ParseShelfID(viper.GetString("shelf"))
}

// ParseShelfID returns the number in s, or the FNV hash of s if it is not a number
func ParseShelfID(s string) uint64 {
	s = strings.TrimSpace(s)
	if id, err := strconv.ParseUint(s, 10, 64); err == nil {
		return id
	}
	return shelfUtil.HashString(s, 0)
}

// ParseShelves parses a comma-separated list of ID=SOURCE pairs,
// e.g. "100=builtin,200=/etc/dshelf/books.yaml"
func ParseShelves(s string) ([]common.ServerShelf, error) {
	var shelves []common.ServerShelf
	for _, shelfConfig := range strings.Split(s, ",") {
		if strings.TrimSpace(shelfConfig) == "" {
			continue
		}
		id, source, ok := strings.Cut(shelfConfig, "=")
		if !ok || strings.TrimSpace(id) == "" || strings.TrimSpace(source) == "" {
			return nil, fmt.Errorf("invalid shelf format: %s (expected ID=SOURCE)", shelfConfig)
		}
		shelves = append(shelves, common.ServerShelf{
			ShelfID: ParseShelfID(id),
			Source:  strings.TrimSpace(source),
		})
	}
	if len(shelves) == 0 {
		return nil, fmt.Errorf("no shelves given")
	}
	return shelves, nil
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
