package tjdate_test

import (
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/jlrickert/tjdate/pkg/tjdate"
)

func connectMCP(t *testing.T, svc *tjdate.Service) *mcp.ClientSession {
	t.Helper()
	ctx := t.Context()

	server := tjdate.NewMCPServer(svc, "test")
	st, ct := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, st, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "tjdate-test", Version: "test"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "unexpected content type %T", res.Content[0])
	return tc.Text
}

func TestMCP_TimestampTool(t *testing.T) {
	svc, _ := newTestService(t, nil)
	cs := connectMCP(t, svc)

	res, err := cs.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "timestamp",
		Arguments: map[string]any{"instant": "2023-01-01", "format": "${yyyy}/${mm}/${dd}"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, "2023/01/01", textOf(t, res))

	res, err = cs.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "timestamp",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.Equal(t, "2024-02-29 23:59:58.000", textOf(t, res))
}

func TestMCP_TimestampToolParseError(t *testing.T) {
	svc, _ := newTestService(t, nil)
	cs := connectMCP(t, svc)

	res, err := cs.CallTool(t.Context(), &mcp.CallToolParams{
		Name:      "timestamp",
		Arguments: map[string]any{"instant": "not a date"},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)
	require.Contains(t, textOf(t, res), "not a date")
}

func TestMCP_PlaceholdersTool(t *testing.T) {
	svc, _ := newTestService(t, nil)
	cs := connectMCP(t, svc)

	res, err := cs.CallTool(t.Context(), &mcp.CallToolParams{Name: "placeholders", Arguments: map[string]any{}})
	require.NoError(t, err)
	text := textOf(t, res)
	for _, name := range []string{"yyyy", "mm", "dd", "HH", "MM", "SS", "ms", "tzMinutes", "tzName"} {
		require.True(t, strings.Contains(text, "${"+name+"}"), "missing %s in %q", name, text)
	}
}
