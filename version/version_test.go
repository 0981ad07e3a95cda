package version

import "testing"

func TestNew_Defaults(t *testing.T) {
	info := New("difftw")
	if info.Version != "0.0.0-dev" {
		t.Errorf("expected Version '0.0.0-dev', got %q", info.Version)
	}
	if info.BuildDate != "unknown" {
		t.Errorf("expected BuildDate 'unknown', got %q", info.BuildDate)
	}
	if info.GitCommit != "unknown" {
		t.Errorf("expected GitCommit 'unknown', got %q", info.GitCommit)
	}
	if info.Name != "difftw" {
		t.Errorf("expected Name 'difftw', got %q", info.Name)
	}
}

func TestNew_UsesInjectedValues(t *testing.T) {
	old := Version
	Version = "1.2.3"
	t.Cleanup(func() { Version = old })

	if got := New("difftw").Version; got != "1.2.3" {
		t.Errorf("expected Version '1.2.3', got %q", got)
	}
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2024-01-01",
		GitCommit: "abc123",
		Name:      "difftw",
	}
	got := info.String()
	expected := "difftw version 1.2.3 (commit: abc123, built: 2024-01-01)"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}
