package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tesh254/chatdown/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Prints the Markdown of an archived export",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dbPath := viper.GetString("db")

		st, err := storage.NewStorage(dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		defer st.Close()

		export, err := st.GetExport(args[0])
		if err != nil {
			log.Fatalf("Failed to get export: %v", err)
		}

		fmt.Print(export.Markdown)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
