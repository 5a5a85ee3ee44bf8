package internal

import (
	"path/filepath"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "xdg", env: map[string]string{"XDG_CONFIG_HOME": "/xdg"}, want: filepath.Join("/xdg", "tjdate")},
		{name: "appdata", env: map[string]string{"XDG_CONFIG_HOME": "", "APPDATA": "/appdata"}, want: filepath.Join("/appdata", "tjdate")},
		{name: "home fallback", env: map[string]string{"XDG_CONFIG_HOME": "", "APPDATA": ""}, want: filepath.Join("/home/testuser", ".config", "tjdate")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sb := sandbox.NewSandbox(t, &sandbox.Options{Home: "/home/testuser", User: "testuser"},
				sandbox.WithEnvMap(tc.env))

			got, err := GetConfigDir(sb.Runtime(), "tjdate")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()
	sb := sandbox.NewSandbox(t, &sandbox.Options{Home: "/home/testuser", User: "testuser"})
	rt := sb.Runtime()
	dir := "/home/testuser/.config/tjdate"

	_, ok := FindConfigFile(rt, dir, "config.yaml", "config.toml")
	require.False(t, ok)

	require.NoError(t, sb.Mkdir(filepath.Join(dir, "config.yaml"), true))
	sb.MustWriteFile(filepath.Join(dir, "config.toml"), []byte(""), 0o644)

	got, ok := FindConfigFile(rt, dir, "config.yaml", "config.toml")
	require.True(t, ok)
	require.Equal(t, filepath.Join(dir, "config.toml"), got)
}

func TestHostPath(t *testing.T) {
	t.Parallel()
	sb := sandbox.NewSandbox(t, &sandbox.Options{Home: "/home/testuser", User: "testuser"})

	got, err := HostPath(sb.Runtime(), "~/logs/tjdate.log")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(sb.GetJail(), "/home/testuser/logs/tjdate.log"), got)

	got, err = HostPath(sb.Runtime(), "notes.txt")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(sb.GetJail(), "/home/testuser/notes.txt"), got)
}
