package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/morozRed/powerdex/internal/config"
	"github.com/morozRed/powerdex/internal/output"
	"github.com/morozRed/powerdex/internal/state"
	"github.com/stretchr/testify/require"
)

var fixtureDir = filepath.Join("..", "tables", "testdata", "basic")

func TestExtractWritesDictionaryAndState(t *testing.T) {
	out := t.TempDir()

	first := runExtract(t, fixtureDir, "-o", out, "--categories", "Blaster_Ranged")
	require.Equal(t, "extract", first.Mode)
	require.Equal(t, config.FormatJSON, first.Format)
	require.Equal(t, 1, first.TopLevel)
	require.Equal(t, 1, first.Counts.TopLevel)
	require.Equal(t, 3, first.Issues)
	require.Equal(t, first.Written, first.Rewritten)
	require.NotEmpty(t, first.RunID)

	assertExists(t, filepath.Join(out, output.JSONFile))
	assertExists(t, filepath.Join(out, "blaster-ranged", "fire-blast", output.JSONFile))
	assertExists(t, filepath.Join(out, output.ManifestFile))

	st, err := state.Load(out)
	require.NoError(t, err)
	require.Equal(t, first.RunID, st.RunID)
	require.Len(t, st.OutputHashes, first.Written)

	second := runExtract(t, fixtureDir, "-o", out, "--categories", "Blaster_Ranged")
	require.Equal(t, 1, second.Rewritten, "only the manifest changes between runs")
	require.Equal(t, 0, second.Removed)
	require.NotEqual(t, first.RunID, second.RunID)
}

func TestExtractFormatSwitchRemovesStaleOutputs(t *testing.T) {
	out := t.TempDir()
	runExtract(t, fixtureDir, "-o", out)

	summary := runExtract(t, fixtureDir, "-o", out, "--format", "JSONL")
	require.Equal(t, config.FormatJSONL, summary.Format)
	require.Positive(t, summary.Removed)
	require.Contains(t, summary.StaleFiles, output.JSONFile)

	_, err := os.Stat(filepath.Join(out, output.JSONFile))
	require.True(t, os.IsNotExist(err), "json index removed after switching to jsonl")
	assertExists(t, filepath.Join(out, "categories.jsonl"))
	assertExists(t, filepath.Join(out, "powers.jsonl"))
}

func TestExtractUnknownCategoryFails(t *testing.T) {
	_, _, err := execute(t, "extract", fixtureDir, "-o", t.TempDir(), "--categories", "Blastr_Ranged")
	exitErr := requireExitError(t, err, ExitFailure)
	require.Contains(t, exitErr.Message, "did you mean Blaster_Ranged")
}

func TestExtractInvalidFlagsAreUsageErrors(t *testing.T) {
	_, _, err := execute(t, "extract", fixtureDir, "-o", t.TempDir(), "--format", "xml")
	exitErr := requireExitError(t, err, ExitUsage)
	require.Contains(t, exitErr.Message, "output_format")

	_, _, err = execute(t, "extract", filepath.Join(t.TempDir(), "missing"))
	requireExitError(t, err, ExitUsage)
}

func TestExtractMissingTableFails(t *testing.T) {
	input := t.TempDir()
	_, _, err := execute(t, "extract", input, "-o", t.TempDir())
	exitErr := requireExitError(t, err, ExitFailure)
	require.Contains(t, exitErr.Message, "unable to read classes table")
}

func TestExtractReportsTableIssues(t *testing.T) {
	_, stderr, err := execute(t, "extract", fixtureDir, "-o", t.TempDir(), "--json")
	require.NoError(t, err)
	require.Contains(t, stderr, "[warning] powers (Villain_Pets.Imps.Fire_Bolt)")
}

func TestExtractLeavesStalePathsOutsideOutputAlone(t *testing.T) {
	parent := t.TempDir()
	out := filepath.Join(parent, "out")
	victim := filepath.Join(parent, "keep.txt")
	mustWriteFile(t, victim, "not ours\n")

	st := state.NewState()
	st.SetOutputHash("../keep.txt", "stale")
	require.NoError(t, st.Save(out))

	summary := runExtract(t, fixtureDir, "-o", out, "--categories", "Blaster_Ranged")
	require.Equal(t, 0, summary.Removed)
	assertExists(t, victim)

	saved, err := state.Load(out)
	require.NoError(t, err)
	_, tracked := saved.GetOutputHash("../keep.txt")
	require.False(t, tracked, "rejected path is not carried into the next state")
}

func TestExtractAppliesAssets(t *testing.T) {
	out := t.TempDir()
	t.Setenv("POWERDEX_ASSETS_BASE_URL", "https://cdn.example.test/")
	t.Setenv("POWERDEX_ASSETS_EXT", ".png")
	t.Setenv("POWERDEX_ASSETS_POWERS_ICON_FORMAT", "powers/{icon}")
	runExtract(t, fixtureDir, "-o", out, "--categories", "Blaster_Ranged")

	data, err := os.ReadFile(filepath.Join(out, "blaster-ranged", "fire-blast", output.JSONFile))
	require.NoError(t, err)
	require.Contains(t, string(data), `"icon": "https://cdn.example.test/powers/fireblast_flares.png"`)
}

func TestStatusReportsDrift(t *testing.T) {
	out := t.TempDir()
	runExtract(t, fixtureDir, "-o", out, "--categories", "Blaster_Ranged")

	clean := runStatus(t, out)
	require.True(t, clean.Clean)
	require.Equal(t, config.FormatJSON, clean.Format)
	require.Positive(t, clean.Tracked)

	categoryDoc := filepath.Join(out, "blaster-ranged", output.JSONFile)
	mustWriteFile(t, categoryDoc, "{}\n")
	mustWriteFile(t, filepath.Join(out, "notes.txt"), "mine\n")
	require.NoError(t, os.Remove(filepath.Join(out, "archetypes", output.JSONFile)))

	dirty := runStatus(t, out)
	require.False(t, dirty.Clean)
	require.Equal(t, []string{"blaster-ranged/index.json"}, dirty.Modified)
	require.Equal(t, []string{"archetypes/index.json"}, dirty.Missing)
	require.Equal(t, []string{"notes.txt"}, dirty.Untracked)
}

func TestStatusWithoutPreviousRun(t *testing.T) {
	summary := runStatus(t, filepath.Join(t.TempDir(), "never-written"))
	require.True(t, summary.Clean)
	require.Zero(t, summary.Tracked)
}

func TestInspectPower(t *testing.T) {
	stdout, _, err := execute(t, "inspect", "blaster_ranged.fire_blast.FLARES",
		"--input", fixtureDir, "--categories", "Blaster_Ranged", "--json")
	require.NoError(t, err)

	var result InspectResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Equal(t, "power", result.Kind)
	require.Equal(t, "Blaster_Ranged.Fire_Blast.Flares", result.Name)
	require.True(t, result.Included)
	require.Equal(t, "Click", result.Type)
	require.Equal(t, []string{"Class_Blaster"}, result.Archetypes)
	require.Equal(t, []string{"Redirects.Fire.Flares_Combo"}, result.Redirects)
	require.Equal(t, []string{"Ranged Damage"}, result.EnhancementSetCategories)
}

func TestInspectCategoryText(t *testing.T) {
	stdout, _, err := execute(t, "inspect", "Blaster_Ranged", "--input", fixtureDir, "--categories", "Blaster_Ranged")
	require.NoError(t, err)
	require.Contains(t, stdout, "category Blaster_Ranged (Blaster Ranged)")
	require.Contains(t, stdout, "top level: true")
	require.Contains(t, stdout, "Blaster_Ranged.Fire_Blast")
}

func TestInspectHonorsFilterAndGlobalFlags(t *testing.T) {
	stdout, _, err := execute(t, "inspect", "Villain_Pets.Imps", "--input", fixtureDir, "--json")
	require.NoError(t, err)
	var set InspectResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &set))
	require.Equal(t, "power_set", set.Kind)

	_, _, err = execute(t, "inspect", "Villain_Pets.Imps", "--input", fixtureDir, "--filter", "Villain_Pets.*")
	exitErr := requireExitError(t, err, ExitFailure)
	require.Contains(t, exitErr.Message, `no category, power set or power named "Villain_Pets.Imps"`)

	stdout, _, err = execute(t, "inspect", "Villain_Pets", "--input", fixtureDir, "--json")
	require.NoError(t, err)
	var plain InspectResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &plain))
	require.NotContains(t, plain.Archetypes, "Class_Blaster")

	stdout, _, err = execute(t, "inspect", "Villain_Pets", "--input", fixtureDir, "--global", "Villain_Pets", "--json")
	require.NoError(t, err)
	var shared InspectResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &shared))
	require.Contains(t, shared.Archetypes, "Class_Blaster")
}

func TestInspectUnknownNameSuggests(t *testing.T) {
	_, _, err := execute(t, "inspect", "Blaster_Ranged.Fire_Blast.Flare", "--input", fixtureDir)
	exitErr := requireExitError(t, err, ExitFailure)
	require.Contains(t, exitErr.Message, "did you mean Blaster_Ranged.Fire_Blast.Flares")
}

func TestInitWritesStarterConfigOnce(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		file string
	}{
		{name: "yaml", file: "powerdex.yaml"},
		{name: "hcl", args: []string{"--hcl"}, file: "powerdex.hcl"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			args := append([]string{"init", dir}, tc.args...)

			stdout, _, err := execute(t, args...)
			require.NoError(t, err)
			require.Contains(t, stdout, "Wrote")

			path, ok := config.Find(dir)
			require.True(t, ok)
			require.Equal(t, filepath.Join(dir, tc.file), path)
			cfg, err := config.Load(path)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			require.Equal(t, "output", cfg.OutputPath)

			stdout, _, err = execute(t, args...)
			require.NoError(t, err)
			require.Contains(t, stdout, "already exists")
		})
	}
}

func TestExtractReadsConfigFile(t *testing.T) {
	out := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	mustWriteFile(t, cfgPath, "output_path: "+out+"\npower_categories: [Blaster_Ranged]\noutput_style: compact\nissue: \"27\"\n")

	stdout, _, err := execute(t, "extract", fixtureDir, "--config", cfgPath, "--json")
	require.NoError(t, err)
	var summary RunSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	require.Equal(t, 1, summary.TopLevel)

	data, err := os.ReadFile(filepath.Join(out, output.JSONFile))
	require.NoError(t, err)
	require.NotContains(t, string(data), "\n  ", "compact style")
	require.Contains(t, string(data), `"issue":"27"`)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "powerdex test\n", stdout)
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(append([]string{}, args...), "--log-level=error"))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func runExtract(t *testing.T, input string, flags ...string) RunSummary {
	t.Helper()
	args := append([]string{"extract", input, "--json"}, flags...)
	stdout, _, err := execute(t, args...)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	var summary RunSummary
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("failed to decode extract summary: %v\n%s", err, stdout)
	}
	return summary
}

func runStatus(t *testing.T, out string) StatusSummary {
	t.Helper()
	stdout, _, err := execute(t, "status", "-o", out, "--json")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	var summary StatusSummary
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("failed to decode status summary: %v\n%s", err, stdout)
	}
	return summary
}

func requireExitError(t *testing.T, err error, code int) *ExitError {
	t.Helper()
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, code, exitErr.Code, exitErr.Message)
	return exitErr
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
