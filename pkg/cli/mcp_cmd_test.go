package cli_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_ServesAndReloads(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)
	path := testConfigDir + "/config.yaml"
	sb.MustWriteFile(path, []byte("defaultFormat: \"${yyyy}\"\n"), 0o644)

	// The client talks to the command over its stdin and stdout.
	proc := NewProcess(t, false, "mcp")
	stdout := proc.StdoutPipe()

	ctx, cancel := context.WithCancel(sb.Context())
	defer cancel()
	done := make(chan int, 1)
	go func() {
		done <- proc.Run(ctx, sb.Runtime()).ExitCode
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "tjdate-test", Version: "test"}, nil)
	cs, err := client.Connect(ctx, &mcp.IOTransport{Reader: io.NopCloser(stdout), Writer: proc}, nil)
	require.NoError(t, err)
	defer func() { _ = cs.Close() }()

	call := func() string {
		res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "timestamp", Arguments: map[string]any{}})
		require.NoError(t, err)
		require.False(t, res.IsError)
		require.NotEmpty(t, res.Content)
		return res.Content[0].(*mcp.TextContent).Text
	}

	require.Equal(t, "2024", call())

	require.Eventually(t, func() bool {
		_ = sb.WriteFile(path, []byte("defaultFormat: \"${mm}/${dd}\"\n"), 0o644)
		return call() == "03/09"
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case code := <-done:
		require.Equal(t, 130, code)
	case <-time.After(5 * time.Second):
		t.Fatal("mcp command did not stop after cancel")
	}
}

func TestMCPCmd_StopsWhenStdinCloses(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)

	proc := NewProcess(t, false, "mcp")
	proc.SetStdin(strings.NewReader(""))

	done := make(chan int, 1)
	go func() {
		done <- proc.Run(sb.Context(), sb.Runtime()).ExitCode
	}()

	select {
	case code := <-done:
		require.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("mcp command did not stop at end of input")
	}
}
