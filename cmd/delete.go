package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tesh254/chatdown/internal/storage"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Deletes an archived export",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dbPath := viper.GetString("db")

		st, err := storage.NewStorage(dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		defer st.Close()

		if err := st.DeleteExport(args[0]); err != nil {
			log.Fatalf("Failed to delete export: %v", err)
		}

		fmt.Printf("Export '%s' deleted successfully.\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
