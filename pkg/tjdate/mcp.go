package tjdate

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jlrickert/tjdate/pkg/datefmt"
)

// TimestampInput is the argument shape of the "timestamp" tool.
type TimestampInput struct {
	Instant string `json:"instant,omitempty" jsonschema:"date or date-time string to format; empty means now"`
	Format  string `json:"format,omitempty" jsonschema:"template using ${name} placeholders; empty means the default template"`
}

// TimestampOutput is the structured result of the "timestamp" tool.
type TimestampOutput struct {
	Timestamp string `json:"timestamp"`
	Template  string `json:"template"`
}

// PlaceholderInfo describes one vocabulary entry.
type PlaceholderInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PlaceholdersOutput is the structured result of the "placeholders" tool.
type PlaceholdersOutput struct {
	DefaultTemplate string            `json:"defaultTemplate"`
	Placeholders    []PlaceholderInfo `json:"placeholders"`
}

// NewMCPServer exposes the service as MCP tools.
func NewMCPServer(svc *Service, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ConfigAppName, Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "timestamp",
		Description: "Format a date/time (or now) with a ${name} placeholder template.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, in TimestampInput) (*mcp.CallToolResult, TimestampOutput, error) {
		engine := svc.Engine()
		out, err := engine.GetTimestamp(in.Instant, &datefmt.Options{Format: in.Format})
		if err != nil {
			return nil, TimestampOutput{}, err
		}
		tmpl := in.Format
		if tmpl == "" {
			tmpl = engine.DefaultTemplate()
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: out}},
		}, TimestampOutput{Timestamp: out, Template: tmpl}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "placeholders",
		Description: "List the placeholders available in timestamp templates.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, PlaceholdersOutput, error) {
		out := PlaceholdersOutput{DefaultTemplate: svc.Engine().DefaultTemplate()}
		var lines []string
		for _, name := range datefmt.AvailablePlaceholders {
			desc := datefmt.PlaceholderDescriptions[name]
			out.Placeholders = append(out.Placeholders, PlaceholderInfo{Name: name, Description: desc})
			lines = append(lines, fmt.Sprintf("${%s}\t%s", name, desc))
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: strings.Join(lines, "\n")}},
		}, out, nil
	})

	return server
}
