package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tesh254/chatdown/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all archived exports",
	Run: func(cmd *cobra.Command, args []string) {
		dbPath := viper.GetString("db")

		st, err := storage.NewStorage(dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		defer st.Close()

		exports, err := st.ListExports()
		if err != nil {
			log.Fatalf("Failed to list exports: %v", err)
		}

		if len(exports) == 0 {
			fmt.Println("No exports found.")
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Title", "Messages", "Created"})
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignLeft, WidthMax: 36},
			{Number: 2, Align: text.AlignLeft, WidthMax: 50},
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignLeft},
		})

		for _, e := range exports {
			t.AppendRow(table.Row{e.ID, e.Title, strconv.Itoa(e.Messages), e.CreatedAt.Format("2006-01-02 15:04")})
		}
		t.AppendSeparator()
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
