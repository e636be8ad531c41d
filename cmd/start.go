package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tesh254/chatdown/internal/core"
	"github.com/tesh254/chatdown/internal/storage"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the MCP server",
	Run: func(cmd *cobra.Command, args []string) {
		dbPath := viper.GetString("db")
		httpAddress := viper.GetString("http-address")

		st, err := storage.NewStorage(dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		defer st.Close()

		log.Println("Starting MCP server...")
		mcpServer := &core.Core{}
		if err := mcpServer.StartServer(st, httpAddress); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().String("http-address", "", "HTTP address to listen on (empty means stdio transport)")
	viper.BindPFlag("http-address", startCmd.Flags().Lookup("http-address"))
}
