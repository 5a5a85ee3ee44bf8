package cli_test

import (
	"context"
	"embed"
	"log/slog"
	"testing"
	"time"

	tu "github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/stretchr/testify/require"

	"github.com/jlrickert/tjdate/pkg/cli"
	"github.com/jlrickert/tjdate/pkg/log"
)

// testdata holds config fixtures copied into the sandbox with
// tu.WithFixture.
//
//go:embed all:data
var testdata embed.FS

const testConfigDir = "/home/testuser/.config/tjdate"

var testNow = time.Date(2024, time.March, 9, 14, 5, 6, 7_000_000, time.UTC)

// NewSandbox returns a jailed runtime with a fixed clock at testNow, TZ=UTC
// and an empty config directory.
func NewSandbox(t *testing.T, opts ...tu.Option) *tu.Sandbox {
	t.Helper()
	base := []tu.Option{
		tu.WithClock(testNow),
		tu.WithEnv("TZ", "UTC"),
	}
	sb := tu.NewSandbox(t, &tu.Options{
		Data: testdata,
		Home: "/home/testuser",
		User: "testuser",
	}, append(base, opts...)...)
	require.NoError(t, sb.Mkdir(testConfigDir, true))
	return sb
}

func NewProcess(t *testing.T, isTTY bool, args ...string) *tu.Process {
	return tu.NewProcess(func(ctx context.Context, rt *toolkit.Runtime) (int, error) {
		return cli.Run(ctx, rt, args)
	}, isTTY)
}

// Exec runs args to completion in sb with a non-terminal stdout.
func Exec(t *testing.T, sb *tu.Sandbox, args ...string) *tu.ProcessResult {
	t.Helper()
	return NewProcess(t, false, args...).Run(sb.Context(), sb.Runtime())
}

// CaptureLogs replaces the sandbox logger with one whose entries can be
// inspected.
func CaptureLogs(t *testing.T, sb *tu.Sandbox) *log.TestHandler {
	t.Helper()
	lg, th := log.NewTestLogger(t, slog.LevelDebug)
	require.NoError(t, sb.Runtime().SetLogger(lg))
	return th
}
