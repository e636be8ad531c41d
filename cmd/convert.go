package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/tesh254/chatdown/internal/fetch"
	"github.com/tesh254/chatdown/internal/transcript"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Converts a saved transcript page to Markdown",
	Long:  `Converts the rendered HTML of a chat conversation to GitHub-flavored Markdown. Reads a saved page from a file (or stdin), or fetches it with --url, and writes the Markdown next to you, named after the conversation title unless -o is given.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		urlFlag, _ := cmd.Flags().GetString("url")
		output, _ := cmd.Flags().GetString("output")
		toStdout, _ := cmd.Flags().GetBool("stdout")
		verbose, _ := cmd.Flags().GetBool("verbose")

		doc, err := loadDocument(args, urlFlag)
		if err != nil {
			log.Fatalf("Failed to load transcript: %v", err)
		}

		md := doc.Markdown()

		if toStdout {
			fmt.Print(md)
		} else {
			if output == "" {
				output = transcript.SanitizeFilename(doc.Title) + ".md"
			}
			if err := os.WriteFile(output, []byte(md), 0644); err != nil {
				log.Fatalf("Failed to write %s: %v", output, err)
			}
			fmt.Printf("Wrote %s\n", output)
		}

		if verbose {
			doc.DisplaySummary()
		}
	},
}

// loadDocument reads the transcript page from --url, a file argument, or
// stdin, in that order of preference.
func loadDocument(args []string, urlFlag string) (*transcript.Document, error) {
	if urlFlag != "" {
		node, err := fetch.New(nil).Page(urlFlag)
		if err != nil {
			return nil, err
		}
		doc := transcript.FromNode(node)
		doc.Source = urlFlag
		return doc, nil
	}

	if len(args) == 0 {
		doc, err := transcript.Parse(os.Stdin)
		if err != nil {
			return nil, err
		}
		doc.Source = "stdin"
		return doc, nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := transcript.Parse(file)
	if err != nil {
		return nil, err
	}
	doc.Source = args[0]
	return doc, nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("url", "u", "", "Fetch the transcript page from a URL instead of a file")
	convertCmd.Flags().StringP("output", "o", "", "Output file path (default derives from the conversation title)")
	convertCmd.Flags().Bool("stdout", false, "Print the Markdown to stdout instead of writing a file")
	convertCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
}
