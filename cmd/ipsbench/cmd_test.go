// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"ipsbench/internal/config"
	"ipsbench/internal/testutil"
)

type (
	stubConfig struct {
		cfg *config.Config
		err error
	}

	cliResult struct {
		stdout string
		stderr string
		// rawStdout keeps escape sequences.
		rawStdout string
		err       error
	}
)

func (s stubConfig) Load(context.Context, config.LoadOptions) (*config.Config, error) {
	if s.err != nil {
		return nil, s.err
	}
	cfg := *s.cfg
	return &cfg, nil
}

// testConfig keeps budgets and the array tiny so commands finish instantly.
func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Warmup = 10 * time.Millisecond
	cfg.Measure = 5 * time.Millisecond
	cfg.Interactive = config.InteractiveNever
	cfg.Workload.Size = 16
	return cfg
}

func runCLI(t *testing.T, provider ConfigProvider, args ...string) cliResult {
	t.Helper()
	return runCLIOnTerminal(t, provider, false, args...)
}

// runCLIOnTerminal runs the CLI with terminal detection answering terminal
// for both stdout and stderr.
func runCLIOnTerminal(t *testing.T, provider ConfigProvider, terminal bool, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app, err := NewApp(Dependencies{
		Config: provider,
		Clock:  testutil.NewStepClock(time.Millisecond),
		Detect: func(io.Writer) bool { return terminal },
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	root := NewRootCommand(app)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())

	return cliResult{
		stdout:    ansi.Strip(stdout.String()),
		stderr:    ansi.Strip(stderr.String()),
		rawStdout: stdout.String(),
		err:       err,
	}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v (%T) is not an *ExitError", err, err)
	}
	return exitErr.Code
}

func TestRunBuiltinSubset(t *testing.T) {
	t.Parallel()

	res := runCLI(t, stubConfig{cfg: testConfig()}, "run", "std sort", "selection sort")
	if res.err != nil {
		t.Fatalf("run error = %v\nstderr: %s", res.err, res.stderr)
	}

	lines := strings.Split(strings.TrimRight(res.stdout, "\n"), "\n")
	// Append mode reprints the table after every task: 1 row, then 2 rows.
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), res.stdout)
	}
	if !strings.Contains(lines[0], "std sort") || !strings.HasSuffix(lines[0], "fastest") {
		t.Errorf("first table should hold only std sort as fastest: %q", lines[0])
	}
	last := strings.Join(lines[1:], "\n")
	for _, want := range []string{"std sort", "selection sort", "(±"} {
		if !strings.Contains(last, want) {
			t.Errorf("final table missing %q:\n%s", want, last)
		}
	}
	if strings.Contains(res.stdout, "insertion sort") {
		t.Error("unselected tasks should not run")
	}
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Workload.Size = 0 // would fail without --size

	res := runCLI(t, stubConfig{cfg: cfg}, "run", "--size", "8", "--measure", "2ms", "--interactive", "never", "slices sort")
	if res.err != nil {
		t.Fatalf("run error = %v\nstderr: %s", res.err, res.stderr)
	}
	if !strings.Contains(res.stdout, "slices sort") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestRunUnknownTask(t *testing.T) {
	t.Parallel()

	res := runCLI(t, stubConfig{cfg: testConfig()}, "run", "bubble sort")
	if code := exitCode(t, res.err); code != exitUsage {
		t.Fatalf("exit code = %d, want %d", code, exitUsage)
	}
	if res.stdout != "" {
		t.Errorf("nothing should be measured, stdout = %q", res.stdout)
	}
	for _, want := range []string{"bubble sort", "Available tasks: selection sort, insertion sort, std sort, slices sort", "ipsbench list"} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, res.stderr)
		}
	}
}

func TestRunInvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"interactive", []string{"run", "--interactive", "sometimes"}, "sometimes"},
		{"size", []string{"run", "--size", "-3"}, "invalid workload size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, stubConfig{cfg: testConfig()}, tt.args...)
			if code := exitCode(t, res.err); code != exitUsage {
				t.Fatalf("exit code = %d, want %d", code, exitUsage)
			}
			if !strings.Contains(res.stderr, tt.want) {
				t.Errorf("stderr missing %q:\n%s", tt.want, res.stderr)
			}
		})
	}
}

func TestRunConfigError(t *testing.T) {
	t.Parallel()

	res := runCLI(t, stubConfig{err: errors.New("boom")}, "run")
	if code := exitCode(t, res.err); code != exitFailure {
		t.Fatalf("exit code = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(res.stderr, "boom") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestRunWithConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bench.cue")
	content := `
warmup: "5ms"
measure: "3ms"
interactive: "never"
workload: size: 4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	res := runCLI(t, nil, "--config", path, "run", "insertion sort")
	if res.err != nil {
		t.Fatalf("run error = %v\nstderr: %s", res.err, res.stderr)
	}
	if !strings.Contains(res.stdout, "insertion sort") {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	res := runCLI(t, stubConfig{cfg: testConfig()}, "-v", "run", "std sort")
	if res.err != nil {
		t.Fatalf("run error = %v", res.err)
	}
	if !strings.Contains(res.stderr, "calibrated") {
		t.Errorf("verbose run should log calibration, stderr = %q", res.stderr)
	}
	if strings.Contains(res.stdout, "calibrated") {
		t.Error("logs must not reach stdout")
	}
}

func TestInPlaceRedrawOnTerminal(t *testing.T) {
	t.Parallel()

	res := runCLIOnTerminal(t, stubConfig{cfg: testConfig()}, true, "run", "--interactive", "always", "std sort", "slices sort")
	if res.err != nil {
		t.Fatalf("run error = %v\nstderr: %s", res.err, res.stderr)
	}
	if !strings.Contains(res.rawStdout, ansi.CursorUp(1)) {
		t.Errorf("second table should move the cursor over the first: %q", res.rawStdout)
	}
}

func TestVerboseOnTerminalAppends(t *testing.T) {
	t.Parallel()

	res := runCLIOnTerminal(t, stubConfig{cfg: testConfig()}, true, "-v", "run", "--interactive", "always", "std sort", "slices sort")
	if res.err != nil {
		t.Fatalf("run error = %v\nstderr: %s", res.err, res.stderr)
	}
	if !strings.Contains(res.stderr, "measured") {
		t.Fatalf("verbose run should log between tables, stderr = %q", res.stderr)
	}
	for _, up := range []string{ansi.CursorUp(1), ansi.CursorUp(2)} {
		if strings.Contains(res.rawStdout, up) {
			t.Errorf("table redrawn in place over log lines: %q", res.rawStdout)
		}
	}
	if lines := strings.Split(strings.TrimRight(res.stdout, "\n"), "\n"); len(lines) != 3 {
		t.Errorf("appended tables = %d lines, want 3:\n%s", len(lines), res.stdout)
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	res := runCLI(t, stubConfig{cfg: testConfig()}, "list")
	if res.err != nil {
		t.Fatalf("list error = %v", res.err)
	}
	want := "selection sort\ninsertion sort\nstd sort\nslices sort\n"
	if res.stdout != want {
		t.Errorf("list output = %q, want %q", res.stdout, want)
	}
}

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2026-06-15T10:00:00Z"

		want := "v1.2.3 (commit: abc1234, built: 2026-06-15T10:00:00Z)"
		if got := getVersionString(); got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}
