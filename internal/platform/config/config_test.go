package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv aísla el test de variables del entorno del dev.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PETREGISTRY_CONFIG", "PETREGISTRY_STORAGE_DRIVER", "PETREGISTRY_STORAGE_DSN",
		"PETREGISTRY_HTTP_PORT", "PORT", "DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
		"PETREGISTRY_UI_API_URL",
	} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Storage.Driver != DriverMemory {
		t.Fatalf("expected memory driver, got %q", c.Storage.Driver)
	}
	if c.HTTP.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", c.HTTP.Addr())
	}
	if c.App.Name != "pet-registry" || c.Log.Level != "info" {
		t.Fatalf("unexpected defaults: %#v", c)
	}
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://localhost/pets")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HTTP.Addr() != ":9090" {
		t.Fatalf("expected :9090, got %s", c.HTTP.Addr())
	}
	if c.Storage.Driver != DriverPostgres || c.Storage.DSN != "postgres://localhost/pets" {
		t.Fatalf("expected postgres from DB_DSN, got %#v", c.Storage)
	}
}

func TestLoad_FileAndPrefixedEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "petregistry.toml")
	content := `
[storage]
driver = "sqlite"
sqlite_path = "/tmp/pets.db"

[photos]
picker_cmd = "zenity --file-selection"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PETREGISTRY_CONFIG", path)
	t.Setenv("PETREGISTRY_UI_API_URL", "http://localhost:8080")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Storage.Driver != DriverSQLite || c.Storage.SQLitePath != "/tmp/pets.db" {
		t.Fatalf("unexpected storage: %#v", c.Storage)
	}
	if c.Photos.PickerCmd != "zenity --file-selection" {
		t.Fatalf("unexpected picker cmd: %q", c.Photos.PickerCmd)
	}
	if c.UI.APIURL != "http://localhost:8080" {
		t.Fatalf("unexpected api url: %q", c.UI.APIURL)
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("PETREGISTRY_STORAGE_DRIVER", "mongo")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestLoad_MissingLocalFileIsFine(t *testing.T) {
	clearEnv(t)

	if _, err := Load(); err != nil {
		t.Fatalf("Load without petregistry.toml: %v", err)
	}
}

func TestLoad_MalformedLocalFileFails(t *testing.T) {
	clearEnv(t)

	// clearEnv deja el cwd en un dir temporal
	if err := os.WriteFile("petregistry.toml", []byte("[storage\ndriver = sqlite"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed petregistry.toml")
	}
}
