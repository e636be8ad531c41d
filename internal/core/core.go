package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tesh254/chatdown/internal/storage"
	"github.com/tesh254/chatdown/internal/transcript"
)

type Core struct {
}

type ConvertHTMLArgs struct {
	HTML string `json:"html" jsonschema:"required"`
}

type SaveExportArgs struct {
	HTML   string `json:"html" jsonschema:"required"`
	Source string `json:"source,omitempty"`
}

type GetExportArgs struct {
	ID string `json:"id" jsonschema:"required"`
}

type DeleteExportArgs struct {
	ID string `json:"id" jsonschema:"required"`
}

type ListExportsArgs struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

type ExportOutput struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Source    string `json:"source"`
	Markdown  string `json:"markdown"`
	Checksum  string `json:"checksum"`
	Messages  int    `json:"messages"`
	CreatedAt string `json:"created_at"`
}

func (c *Core) StartServer(st *storage.Storage, httpAddress string) error {
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "Chatdown MCP Server", Version: "v1.0.0"}, nil)

	c.registerTools(server, st)

	var transport mcp.Transport
	if httpAddress != "" {
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil)
		log.Printf("Chatdown MCP handler listening at %s", httpAddress)
		return http.ListenAndServe(httpAddress, loggingHandler(handler))
	}
	transport = &mcp.StdioTransport{}

	t := &mcp.LoggingTransport{Transport: transport, Writer: os.Stderr}
	return server.Run(ctx, t)
}

func (c *Core) registerTools(server *mcp.Server, st *storage.Storage) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_html",
		Description: "Convert a rendered chat transcript page (HTML) to GitHub-flavored Markdown.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ConvertHTMLArgs) (*mcp.CallToolResult, any, error) {
		doc, err := transcript.Parse(strings.NewReader(args.HTML))
		if err != nil {
			return nil, nil, err
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: doc.Markdown()},
			},
		}, nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_export",
		Description: "Convert a transcript page to Markdown and archive it in the local database.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args SaveExportArgs) (*mcp.CallToolResult, any, error) {
		doc, err := transcript.Parse(strings.NewReader(args.HTML))
		if err != nil {
			return nil, nil, err
		}
		doc.Source = args.Source
		md := doc.Markdown()
		export := &storage.Export{
			ID:        uuid.New().String(),
			Title:     doc.Title,
			Source:    args.Source,
			Markdown:  md,
			Checksum:  fmt.Sprintf("%x", sha256.Sum256([]byte(md))),
			Messages:  len(doc.Messages),
			CreatedAt: time.Now(),
		}
		if err := st.SaveExport(export); err != nil {
			return nil, nil, err
		}
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: "Export saved with id " + export.ID}}}, nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_export",
		Description: "Get a stored export by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args GetExportArgs) (*mcp.CallToolResult, any, error) {
		export, err := st.GetExport(args.ID)
		if err != nil {
			return nil, nil, err
		}
		result, err := json.Marshal(exportOutput(export))
		if err != nil {
			return nil, nil, err
		}
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: string(result)}}}, nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_exports",
		Description: "List archived exports with pagination.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListExportsArgs) (*mcp.CallToolResult, any, error) {
		exports, err := st.ListExports()
		if err != nil {
			return nil, nil, err
		}
		start := args.Offset
		if start > len(exports) {
			start = len(exports)
		}
		end := len(exports)
		if args.Limit > 0 && start+args.Limit < end {
			end = start + args.Limit
		}
		outputs := make([]ExportOutput, 0, end-start)
		for _, e := range exports[start:end] {
			outputs = append(outputs, exportOutput(e))
		}
		result, err := json.Marshal(map[string]interface{}{"exports": outputs, "total": len(exports)})
		if err != nil {
			return nil, nil, err
		}
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: string(result)}}}, nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_export",
		Description: "Delete a stored export by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args DeleteExportArgs) (*mcp.CallToolResult, any, error) {
		if err := st.DeleteExport(args.ID); err != nil {
			return nil, nil, err
		}
		return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: "Export deleted successfully"}}}, nil, nil
	})
}

func exportOutput(e *storage.Export) ExportOutput {
	return ExportOutput{
		ID:        e.ID,
		Title:     e.Title,
		Source:    e.Source,
		Markdown:  e.Markdown,
		Checksum:  e.Checksum,
		Messages:  e.Messages,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
