package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuzzkit/fuzzmap"
	"github.com/fuzzkit/fuzzmap/config"
)

func writeDataFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	// Flag state persists between Execute calls on the same command.
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGetCommandExactKeypath(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	path := writeDataFile(t, "data.yaml", "person:\n  name: John\n")

	out, err := execute(t, GetCmd, path, "person.name", "--json")
	require.NoError(t, err)

	var value any
	require.NoError(t, json.Unmarshal([]byte(out), &value))
	assert.Equal(t, "John", value)
}

func TestGetCommandFuzzyKeypath(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	path := writeDataFile(t, "data.json", `{"person": {"address": {"city": "New York"}}}`)

	out, err := execute(t, GetCmd, path, "persn.adress.city", "--json", "--threshold", "75")
	require.NoError(t, err)

	var value any
	require.NoError(t, json.Unmarshal([]byte(out), &value))
	assert.Equal(t, "New York", value)
}

func TestGetCommandDefaultFallback(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	path := writeDataFile(t, "data.toml", "[person]\nname = \"John\"\n")

	out, err := execute(t, GetCmd, path, "nothing.here", "--json", "--default", "fallback")
	require.NoError(t, err)

	var value any
	require.NoError(t, json.Unmarshal([]byte(out), &value))
	assert.Equal(t, "fallback", value)
}

func TestGetCommandFailureWithoutDefault(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	path := writeDataFile(t, "data.yaml", "person:\n  name: John\n")

	_, err := execute(t, GetCmd, path, "completely.unrelated", "--json", "--threshold", "95")
	require.Error(t, err)
}

func TestExplainCommandTrace(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	path := writeDataFile(t, "data.yaml", "person:\n  name: John\n  address:\n    city: NY\n")

	out, err := execute(t, ExplainCmd, path, "person.adress", "--json", "--threshold", "75")
	require.NoError(t, err)

	var trace []fuzzmap.SegmentMatch
	require.NoError(t, json.Unmarshal([]byte(out), &trace))
	require.Len(t, trace, 2)
	assert.True(t, trace[0].Exact)
	assert.Equal(t, "address", trace[1].Key)
	assert.NotEmpty(t, trace[1].Candidates)
}

func TestVersionCommandJSON(t *testing.T) {
	out, err := execute(t, VersionCmd, "--json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "platform")
}
