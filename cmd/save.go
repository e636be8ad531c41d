package cmd

import (
	"crypto/sha256"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tesh254/chatdown/internal/storage"
)

var saveCmd = &cobra.Command{
	Use:   "save [file]",
	Short: "Converts a transcript page and archives the export in the database",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		urlFlag, _ := cmd.Flags().GetString("url")
		verbose, _ := cmd.Flags().GetBool("verbose")
		dbPath := viper.GetString("db")

		st, err := storage.NewStorage(dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		defer st.Close()

		doc, err := loadDocument(args, urlFlag)
		if err != nil {
			log.Fatalf("Failed to load transcript: %v", err)
		}

		md := doc.Markdown()
		export := &storage.Export{
			ID:        uuid.New().String(),
			Title:     doc.Title,
			Source:    doc.Source,
			Markdown:  md,
			Checksum:  fmt.Sprintf("%x", sha256.Sum256([]byte(md))),
			Messages:  len(doc.Messages),
			CreatedAt: time.Now(),
		}

		if err := st.SaveExport(export); err != nil {
			log.Fatalf("Failed to store export: %v", err)
		}

		fmt.Printf("Saved export %s (%d messages)\n", export.ID, export.Messages)

		if verbose {
			doc.DisplaySummary()
		}
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringP("url", "u", "", "Fetch the transcript page from a URL instead of a file")
	saveCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
}
