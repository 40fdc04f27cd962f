package pyenv

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := "home = /usr/bin\ninclude-system-site-packages = false\nversion = 3.11.4\n"
	if err := os.WriteFile(filepath.Join(dir, "pyvenv.cfg"), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{
		"home":                         "/usr/bin",
		"include-system-site-packages": "false",
		"version":                      "3.11.4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got.Version() != "3.11.4" {
		t.Errorf("Version() = %q, want 3.11.4", got.Version())
	}
}

func TestReadConfigMissing(t *testing.T) {
	if _, err := ReadConfig(t.TempDir()); err == nil {
		t.Error("expected error for missing pyvenv.cfg")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("empty dir should not count as a venv")
	}

	if err := os.WriteFile(filepath.Join(dir, "pyvenv.cfg"), []byte("version = 3.12.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(dir) {
		t.Error("dir with pyvenv.cfg should count as a venv")
	}
}

func TestVersionFallsBackToVersionInfo(t *testing.T) {
	cfg := Config{"version_info": "3.12.1"}
	if cfg.Version() != "3.12.1" {
		t.Errorf("Version() = %q, want 3.12.1", cfg.Version())
	}
}

func TestPipArgBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{
			name: "create venv",
			got:  CreateVenvArgs(".venv"),
			want: []string{"-m", "venv", ".venv"},
		},
		{
			name: "upgrade tools",
			got:  UpgradeToolsArgs([]string{"pip", "setuptools", "wheel"}),
			want: []string{"-m", "pip", "install", "--upgrade", "pip", "setuptools", "wheel"},
		},
		{
			name: "install requirements",
			got:  InstallRequirementsArgs("requirements.txt"),
			want: []string{"-m", "pip", "install", "-r", "requirements.txt"},
		},
		{
			name: "install editable",
			got:  InstallEditableArgs("."),
			want: []string{"-m", "pip", "install", "-e", "."},
		},
		{
			name: "list packages",
			got:  ListPackagesArgs(),
			want: []string{"-m", "pip", "list", "--format", "json"},
		},
	}

	for _, tt := range tests {
		if !reflect.DeepEqual(tt.got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestParsePackageList(t *testing.T) {
	data := []byte(`[{"name": "requests", "version": "2.31.0"}, {"name": "pip", "version": "24.0"}]`)
	packages, err := ParsePackageList(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(packages) != 2 {
		t.Fatalf("expected 2 packages, got %d", len(packages))
	}
	if packages[0].Name != "requests" || packages[0].Version != "2.31.0" {
		t.Errorf("unexpected first package: %+v", packages[0])
	}
}

func TestParsePackageListMalformed(t *testing.T) {
	if _, err := ParsePackageList([]byte("not json")); err == nil {
		t.Error("expected error for malformed package list")
	}
}
