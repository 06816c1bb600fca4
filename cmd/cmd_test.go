package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := RootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGradCheckCommand(t *testing.T) {
	out, err := run(t, "gradcheck", "--states", "5", "--actions", "3",
		"--trials", "3", "--thetas", "2")
	if err != nil {
		t.Fatalf("gradcheck: %v\n%s", err, out)
	}
	if n := strings.Count(out, "PASS"); n != 6 {
		t.Errorf("gradcheck: have %d passing checks want 6\n%s", n, out)
	}
}

func TestGradCheckCommandNoStates(t *testing.T) {
	if _, err := run(t, "gradcheck", "--states", "0"); err == nil {
		t.Error("gradcheck: expected error for no states")
	}
}

func TestSampleCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "gibbs.json")
	config := `{"Type": "Gibbs-Linear", "Config": {"Unrestricted": false}}`
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatal(err)
	}
	chartPath := filepath.Join(dir, "chart.html")

	out, err := run(t, "sample", "--config", configPath, "--states", "3",
		"--actions", "3", "--state", "1", "--valid", "0,2", "--samples",
		"500", "--chart", chartPath)
	if err != nil {
		t.Fatalf("sample: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Gibbs-Linear") {
		t.Errorf("sample: output does not name the policy\n%s", out)
	}
	if !strings.Contains(out, "Action 1:\t0.0000") {
		t.Errorf("sample: invalid action 1 was sampled\n%s", out)
	}
	if _, err := os.Stat(chartPath); err != nil {
		t.Errorf("sample: chart not rendered: %v", err)
	}

	if _, err := run(t, "sample", "--states", "3", "--state", "3"); err == nil {
		t.Error("sample: expected error for out of range state")
	}
	if _, err := run(t, "sample", "--states", "0"); err == nil {
		t.Error("sample: expected error for no states")
	}
	if _, err := run(t, "sample", "--states=-2"); err == nil {
		t.Error("sample: expected error for negative states")
	}
	if _, err := run(t, "sample", "--actions", "0"); err == nil {
		t.Error("sample: expected error for no actions")
	}
	if _, err := run(t, "sample", "--samples", "0"); err == nil {
		t.Error("sample: expected error for no samples")
	}
	if _, err := run(t, "sample", "--samples=-5"); err == nil {
		t.Error("sample: expected error for negative samples")
	}
}
