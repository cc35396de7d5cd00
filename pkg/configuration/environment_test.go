package configuration

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv_LoadsExistingFilesOnly(t *testing.T) {
	tmp := t.TempDir()

	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "STORO_TEST_ENV_LOAD=ok\n")

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	_ = os.Unsetenv("STORO_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 env file loaded, got %d", n)
	}
	if got := os.Getenv("STORO_TEST_ENV_LOAD"); got != "ok" {
		t.Fatalf("expected env var loaded, got %q", got)
	}
}

func TestValidateTenancy(t *testing.T) {
	tests := []struct {
		name    string
		conf    Configuration
		wantErr bool
	}{
		{
			name: "defaults pass",
			conf: Configuration{
				Tenancy:  TenancyOptions{BaseDomain: "storo-shop.com", RLSEnforce: "disabled"},
				Database: DatabaseOptions{User: "storo"},
			},
		},
		{
			name: "empty base domain rejected",
			conf: Configuration{
				Tenancy: TenancyOptions{BaseDomain: "  ", RLSEnforce: "disabled"},
			},
			wantErr: true,
		},
		{
			name: "unknown rls mode rejected",
			conf: Configuration{
				Tenancy: TenancyOptions{BaseDomain: "storo-shop.com", RLSEnforce: "audit"},
			},
			wantErr: true,
		},
		{
			name: "enforce with superuser rejected",
			conf: Configuration{
				Tenancy:  TenancyOptions{BaseDomain: "storo-shop.com", RLSEnforce: "enforce"},
				Database: DatabaseOptions{User: "postgres"},
			},
			wantErr: true,
		},
		{
			name: "base domain lowered and trimmed",
			conf: Configuration{
				Tenancy:  TenancyOptions{BaseDomain: " Storo-Shop.COM ", RLSEnforce: "enforce"},
				Database: DatabaseOptions{User: "storo"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.validateTenancy()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.conf.Tenancy.BaseDomain != "storo-shop.com" {
				t.Fatalf("expected normalized base domain, got %q", tt.conf.Tenancy.BaseDomain)
			}
		})
	}
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
