package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/ngmat"
	"github.com/bjaus/ngmat/internal/config"
)

const defaultTable = `<mat-table-wrapper #m_id="">` +
	`<mat-table matSort="" matSortDisableClear="" [dataSource]="m_id.dataSource" ` +
	`[style.max-height]="m_id.maxHeight?m_id.maxHeight+'px':null" ` +
	`[style.min-height]="m_id.minHeight?m_id.minHeight+'px':null">` +
	`</mat-table></mat-table-wrapper>` + "\n"

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI against an isolated config directory. NGMAT_ID is
// fixed to "id" unless the test overrides it.
func run(t *testing.T, configYAML string, args ...string) result {
	t.Helper()
	return runWithStdin(t, configYAML, "", args...)
}

func runWithStdin(t *testing.T, configYAML, stdin string, args ...string) result {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configYAML), 0o600))
	t.Setenv(config.EnvDebug, "")
	t.Setenv(config.EnvLogFormat, "")
	if _, ok := os.LookupEnv("NGMAT_TEST_KEEP_ID"); !ok {
		t.Setenv(config.EnvID, "id")
	}

	var stdout, stderr bytes.Buffer
	app := &App{Stdin: strings.NewReader(stdin), Stdout: &stdout, Stderr: &stderr, Version: "test"}
	full := append([]string{"--config", cfgPath, "--env-file", filepath.Join(dir, ".env")}, args...)
	err := app.Execute(context.Background(), full)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestRenderTableDefault(t *testing.T) {
	res := run(t, "", "render", "table")
	require.NoError(t, res.err)
	assert.Equal(t, defaultTable, res.stdout)
}

func TestRenderTableFlags(t *testing.T) {
	res := run(t, "", "render", "table",
		"--id", "orders",
		"--query-param", "query",
		"--base-url", "/api/orders",
		"--sort", "created",
		"--sort-direction", "desc",
		"--content", "<x></x>",
	)
	require.NoError(t, res.err)
	want := `<mat-table-wrapper #orders="" [queryParam]="query" baseUrl="/api/orders">` +
		`<mat-table matSort="" matSortActive="created" matSortDirection="desc" matSortDisableClear="" ` +
		`[dataSource]="orders.dataSource" ` +
		`[style.max-height]="orders.maxHeight?orders.maxHeight+'px':null" ` +
		`[style.min-height]="orders.minHeight?orders.minHeight+'px':null">` +
		`<x></x></mat-table></mat-table-wrapper>` + "\n"
	assert.Equal(t, want, res.stdout)
}

func TestRenderLayering(t *testing.T) {
	cfg := "defaults:\n  table:\n    sort: fromconfig\n    base-url: /api\n"
	attrs := writeTemp(t, "attrs.yaml", "sort: fromfile\nquery-param: q\n")

	res := run(t, cfg, "render", "table", "--attrs", attrs)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `[queryParam]="q" baseUrl="/api"`)
	assert.Contains(t, res.stdout, `matSortActive="fromfile"`)

	res = run(t, cfg, "render", "table", "--attrs", attrs, "--sort", "fromflag")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `matSortActive="fromflag"`)
}

func TestRenderContentFile(t *testing.T) {
	path := writeTemp(t, "columns.html", "<cols></cols>")
	res := run(t, "", "render", "table", "--content-file", path)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `null"><cols></cols></mat-table>`)
}

func TestRenderContentStdin(t *testing.T) {
	res := runWithStdin(t, "", "<cols></cols>", "render", "table", "--content-file", "-")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `null"><cols></cols></mat-table>`)
}

func TestRenderContentConflict(t *testing.T) {
	for name, content := range map[string]string{"text": "a", "empty": ""} {
		t.Run(name, func(t *testing.T) {
			res := run(t, "", "render", "table", "--content", content, "--content-file", "b")
			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), "mutually exclusive")
			assert.Equal(t, ExitUser, ExitCode(res.err))
		})
	}
}

func TestInvalidLogFormatExitCode(t *testing.T) {
	t.Run("config file", func(t *testing.T) {
		res := run(t, "log_format: xml\n", "kinds")
		require.ErrorIs(t, res.err, config.ErrInvalid)
		assert.Equal(t, ExitUser, ExitCode(res.err))
	})
	t.Run("environment", func(t *testing.T) {
		original := slog.Default()
		t.Cleanup(func() { slog.SetDefault(original) })
		t.Setenv(config.EnvDebug, "")
		t.Setenv(config.EnvLogFormat, "xml")

		var stdout, stderr bytes.Buffer
		app := &App{Stdout: &stdout, Stderr: &stderr}
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		err := app.Execute(context.Background(), []string{"--config", cfgPath, "--env-file", "", "kinds"})
		require.ErrorIs(t, err, config.ErrInvalid)
		assert.Equal(t, ExitUser, ExitCode(err))
	})
	t.Run("flag", func(t *testing.T) {
		res := run(t, "", "--log-format", "xml", "kinds")
		assert.Equal(t, ExitUser, ExitCode(res.err))
	})
}

func TestRootCommand(t *testing.T) {
	root := NewApp().RootCommand()
	assert.Equal(t, "ngmat", root.Name())

	render, _, err := root.Find([]string{"render"})
	require.NoError(t, err)
	assert.Equal(t, "render", render.Name())
	for _, name := range []string{"id", "query-param", "base-url", "sort", "sort-direction", "attrs", "content", "content-file"} {
		assert.NotNil(t, render.Flags().Lookup(name), name)
	}
	assert.Equal(t, "direction", render.Flags().Lookup("sort-direction").Value.Type())

	kinds, _, err := root.Find([]string{"kinds"})
	require.NoError(t, err)
	assert.Equal(t, "kinds", kinds.Name())
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
}

func TestRenderErrors(t *testing.T) {
	tests := map[string]struct {
		args []string
		want int
	}{
		"unknown kind":    {args: []string{"render", "grid"}, want: ExitUser},
		"missing kind":    {args: []string{"render"}, want: ExitUser},
		"bad direction":   {args: []string{"render", "table", "--sort-direction", "up"}, want: ExitUser},
		"bad id":          {args: []string{"render", "table", "--id", "a-b"}, want: ExitUser},
		"unknown flag":    {args: []string{"render", "table", "--nope"}, want: ExitUser},
		"missing attrs":   {args: []string{"render", "table", "--attrs", "/does/not/exist.yaml"}, want: ExitSystem},
		"bad log format":  {args: []string{"--log-format", "xml", "kinds"}, want: ExitUser},
		"extra kinds arg": {args: []string{"kinds", "x"}, want: ExitUser},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, tt.want, ExitCode(res.err))
			assert.True(t, strings.HasPrefix(res.stderr, "error: "), res.stderr)
		})
	}
}

func TestRenderInvalidAttrsFile(t *testing.T) {
	path := writeTemp(t, "attrs.yaml", "- a\n")
	res := run(t, "", "render", "table", "--attrs", path)
	require.ErrorIs(t, res.err, ngmat.ErrInvalidAttributes)
	assert.Equal(t, ExitUser, ExitCode(res.err))
}

func TestRenderRandomID(t *testing.T) {
	t.Setenv("NGMAT_TEST_KEEP_ID", "1")
	t.Setenv(config.EnvID, "")
	res := run(t, "", "render", "table")
	require.NoError(t, res.err)
	assert.Regexp(t, `^<mat-table-wrapper #m_[0-9a-f]{32}="">`, res.stdout)
}

func TestDebugLogging(t *testing.T) {
	res := run(t, "", "--debug", "render", "table")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "msg=rendering")
	assert.Contains(t, res.stderr, "kind=table")
}

func TestKinds(t *testing.T) {
	res := run(t, "", "kinds")
	require.NoError(t, res.err)
	assert.Equal(t, "table\n", res.stdout)
}

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil":      {nil, ExitOK},
		"canceled": {fmt.Errorf("render: %w", context.Canceled), ExitCanceled},
		"usage":    {&usageError{err: errors.New("bad flag")}, ExitUser},
		"kind":     {fmt.Errorf("x: %w", ngmat.ErrUnknownKind), ExitUser},
		"config":   {fmt.Errorf("load: %w", config.ErrInvalid), ExitUser},
		"system":   {errors.New("disk on fire"), ExitSystem},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
