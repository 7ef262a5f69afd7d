package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stratakv/strata/internal/testing/fake"
	"github.com/stretchr/testify/require"
	urfave "github.com/urfave/cli/v2"
)

func TestMakeApp(t *testing.T) {
	app := makeApp().(*urfave.App)

	require.Equal(t, "strata", app.Name)
	require.Equal(t, "shell", app.Commands[0].Name)
}

func TestShellAction(t *testing.T) {
	out := new(bytes.Buffer)

	stdin = strings.NewReader("SET a 1\nGET a\n")
	stdout = out

	err := shellAction(fake.NewFlags())
	require.NoError(t, err)

	require.Equal(t, "1\n", out.String())
}

func TestShellAction_Seed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yml")

	err := os.WriteFile(path, []byte("a: \"1\"\n"), 0o644)
	require.NoError(t, err)

	out := new(bytes.Buffer)

	stdin = strings.NewReader("GET a\nBEGIN\nDEL a\nROLLBACK\nGET a\n")
	stdout = out

	flags := fake.NewFlags()
	flags.Strings["seed"] = path

	err = shellAction(flags)
	require.NoError(t, err)

	require.Equal(t, "1\n1\n", out.String())
}

func TestShellAction_Metrics(t *testing.T) {
	out := new(bytes.Buffer)

	stdin = strings.NewReader("SET a 1\nGET a\n")
	stdout = out

	flags := fake.NewFlags()
	flags.Bools["metrics"] = true

	err := shellAction(flags)
	require.NoError(t, err)

	require.Equal(t, "1\n", out.String())
}

func TestShellAction_MissingSeed(t *testing.T) {
	flags := fake.NewFlags()
	flags.Strings["seed"] = filepath.Join(t.TempDir(), "missing.yml")

	err := shellAction(flags)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open seed file")
}

func TestShellAction_BadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yml")

	err := os.WriteFile(path, []byte(":\n::"), 0o644)
	require.NoError(t, err)

	flags := fake.NewFlags()
	flags.Strings["seed"] = path

	err = shellAction(flags)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to seed the store")
}
