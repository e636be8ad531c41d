package transcript

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DisplaySummary prints a per-turn breakdown of a converted document.
// Intended for verbose CLI output.
func (d *Document) DisplaySummary() {
	green := color.New(color.FgGreen).SprintFunc()
	banner := "==============================================================================\n"
	banner += green("       📝 Transcript Converted 📝\n")
	banner += "==============================================================================\n"
	banner += fmt.Sprintf("Title: %s\n", d.Title)
	if d.Source != "" {
		banner += fmt.Sprintf("Source: %s\n", d.Source)
	}
	banner += fmt.Sprintf("Turns: %d\n", len(d.Messages))
	banner += "=============================================================================="
	fmt.Println(banner)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Role", "Markdown Length"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft, WidthMax: 20},
		{Number: 3, Align: text.AlignRight},
	})

	for i, msg := range d.Messages {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), roleHeading(msg.Role), len(Convert(msg))})
	}
	t.AppendSeparator()
	t.Render()
}
