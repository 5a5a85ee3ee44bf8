package tjdate_test

import (
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/stretchr/testify/require"
)

const testConfigDir = "/home/testuser/.config/tjdate"

func NewSandbox(t *testing.T, opts ...sandbox.Option) *sandbox.Sandbox {
	t.Helper()
	sb := sandbox.NewSandbox(t, &sandbox.Options{
		Home: "/home/testuser",
		User: "testuser",
	}, opts...)
	require.NoError(t, sb.Mkdir(testConfigDir, true))
	return sb
}
