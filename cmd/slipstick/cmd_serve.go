package main

import (
	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	mcpserver "slipstick/internal/mcp"
	"slipstick/internal/logging"
)

var serveFlags struct {
	custom string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evaluator over MCP on stdio",
	Long: `Starts an MCP server on stdin/stdout exposing list_formulas, get_formula
and evaluate_formula. The server is stateless; a --custom file is appended
to the catalog once at startup.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.custom, "custom", "", "YAML file with user-authored formulas to append to the catalog")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(serveFlags.custom)
	if err != nil {
		return err
	}

	srv := mcpserver.NewServer(cat)
	logging.New("mcp").Info("starting slipstick MCP server over stdio", "formulas", cat.Len())
	return srv.MCPServer.Run(cmd.Context(), &sdkmcp.StdioTransport{})
}
