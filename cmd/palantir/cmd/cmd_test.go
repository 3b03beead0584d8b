package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palantir-ui/palantir/internal/config"
	palantirerrors "github.com/palantir-ui/palantir/pkg/errors"
	"github.com/palantir-ui/palantir/pkg/events"
)

// executeCommand runs a fresh command tree from an empty working directory
// so no palantir.yaml is picked up by accident.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	root, _ := newRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDemoPrintsTree(t *testing.T) {
	out, err := executeCommand(t, "demo")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Contains(t, lines[0], "#demo")
	assert.Contains(t, lines[0], "6 items")

	for _, want := range []string{"#greeting", `"hi"`, "fontSize=18", "#danger", "#list", "2x3", "@(0,0)", "@(1,2)", "#go", "onclick", "#sized", "width=Fixed(100)"} {
		assert.Contains(t, out, want)
	}
}

func TestDemoAppliesTheme(t *testing.T) {
	path := writeConfig(t, "theme:\n  font_size: 20\n  background_color: teal\n")

	out, err := executeCommand(t, "demo", "--config", path)
	require.NoError(t, err)

	first := strings.SplitN(out, "\n", 2)[0]
	assert.Contains(t, first, "fontSize=20")
	assert.Contains(t, first, "backgroundColor=#008080ff")
}

func TestDemoAllFields(t *testing.T) {
	out, err := executeCommand(t, "demo", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "maxHeight=Auto")
	assert.Contains(t, out, "borderRadius=0")
}

func TestDemoRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "theme:\n  v_align: sideways\n")

	_, err := executeCommand(t, "demo", "--config", path)
	var perr *palantirerrors.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, palantirerrors.KindConfig, perr.Kind)
}

func TestConfigFromEnvironment(t *testing.T) {
	path := writeConfig(t, "theme:\n  font_size: 30\n")
	t.Setenv("PALANTIR_CONFIG", path)

	out, err := executeCommand(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "fontSize=30")
}

func TestLogLevelValidation(t *testing.T) {
	t.Setenv("PALANTIR_LOG_LEVEL", "loud")

	_, err := executeCommand(t, "demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `log level "loud"`)
}

func TestClickRunsHandler(t *testing.T) {
	out, err := executeCommand(t, "click", "go")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "clicked go"))
	assert.Contains(t, out, "1 activation(s) delivered to go")
}

func TestClickRepeat(t *testing.T) {
	out, err := executeCommand(t, "click", "go", "--repeat", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "clicked go"))
	assert.Contains(t, out, "3 activation(s)")
}

func TestClickErrors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want error
	}{
		{"no handler", "danger", events.ErrNoHandler},
		{"label", "greeting", events.ErrNoHandler},
		{"missing", "nowhere", events.ErrNoTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "click", tt.id)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClickRequiresID(t *testing.T) {
	_, err := executeCommand(t, "click")
	assert.Error(t, err)
}

func TestPaletteList(t *testing.T) {
	out, err := executeCommand(t, "palette")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "black"))
	assert.Contains(t, out, "#00ff00ff")
	assert.Contains(t, out, "rgba(0, 0, 0, 0)")
}

func TestPaletteResolve(t *testing.T) {
	out, err := executeCommand(t, "palette", "#f00", "cornflowerblue")
	require.NoError(t, err)
	assert.Contains(t, out, "#f00 -> #ff0000ff (red)")
	assert.Contains(t, out, "cornflowerblue -> #6495edff")

	_, err = executeCommand(t, "palette", "#12")
	assert.Error(t, err)
}
