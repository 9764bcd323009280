// cliparse/cliparse_test.go
package cliparse

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var envKeys = []string{
	"PORT", "DEBUG", "LOG", "DATABASE_TYPE", "DATABASE_URL",
	"LOG_FILE", "LEGACY_STATUS", "TRUST_PROXY", "LOG_LEVEL", "ENV_FILE",
}

// clearEnv unsets every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// keep a stray .env in the package dir out of the picture
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5000 {
		t.Errorf("expected port 5000, got %d", cfg.Port)
	}
	if cfg.DebugEnabled {
		t.Error("expected debug disabled by default")
	}
	if !cfg.LogEnabled {
		t.Error("expected logging enabled by default")
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "log.db" {
		t.Errorf("expected log.db, got %s", cfg.DatabaseURL)
	}
	if cfg.LogFile != "access.log" {
		t.Errorf("expected access.log, got %s", cfg.LogFile)
	}
	if cfg.LegacyStatus {
		t.Error("expected legacy status disabled by default")
	}
	if cfg.TrustProxy {
		t.Error("expected forwarding headers ignored by default")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")
	t.Setenv("LOG", "false")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if !cfg.DebugEnabled {
		t.Error("expected debug enabled from env")
	}
	if cfg.LogEnabled {
		t.Error("expected logging disabled from env")
	}
	if cfg.DatabaseType != DatabasePostgres || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database settings: %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "false")

	cfg, err := ParseFlags([]string{"-p", "8080", "--debug", "--log=false", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if !cfg.DebugEnabled {
		t.Error("CLI should override env: expected debug enabled")
	}
	if cfg.LogEnabled {
		t.Error("expected logging disabled")
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected file:test.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PORT=7000\nLEGACY_STATUS=true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"--env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 7000 {
		t.Errorf("expected port 7000 from env file, got %d", cfg.Port)
	}
	if !cfg.LegacyStatus {
		t.Error("expected legacy status from env file")
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		args  []string
		field string
	}{
		{"port zero", []string{"-p", "0"}, "port"},
		{"port too large", []string{"-p", "70000"}, "port"},
		{"unknown database", []string{"-t", "mysql"}, "database-type"},
		{"empty database url", []string{"-d", ""}, "database-url"},
		{"empty log file", []string{"--log-file", ""}, "log-file"},
		{"bad log level", []string{"--log-level", "loud"}, "log-level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)

			_, err := ParseFlags(tc.args)

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("expected field %s, got %s", tc.field, cfgErr.Field)
			}
		})
	}
}

func TestParseFlags_LogFileIgnoredWhenLoggingDisabled(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags([]string{"--log=false", "--log-file", ""}); err != nil {
		t.Errorf("expected no error with logging disabled, got %v", err)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags([]string{"--nope"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestParseFlags_TrustProxy(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TRUST_PROXY", "true")

		cfg, err := ParseFlags([]string{})
		if err != nil {
			t.Fatal(err)
		}
		if !cfg.TrustProxy {
			t.Error("expected TRUST_PROXY=true to enable forwarding headers")
		}
	})

	t.Run("flag", func(t *testing.T) {
		clearEnv(t)

		cfg, err := ParseFlags([]string{"--trust-proxy=true"})
		if err != nil {
			t.Fatal(err)
		}
		if !cfg.TrustProxy {
			t.Error("expected --trust-proxy=true to enable forwarding headers")
		}
	})
}

func TestBindFlags_BoolUsageShowsEqualsForm(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(flags, viper.New()); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		flag string
		form string
	}{
		{"debug", "--debug=true"},
		{"log", "--log=false"},
		{"legacy-status", "--legacy-status=true"},
		{"trust-proxy", "--trust-proxy=true"},
	}

	for _, tc := range testCases {
		t.Run(tc.flag, func(t *testing.T) {
			f := flags.Lookup(tc.flag)
			if f == nil {
				t.Fatalf("flag %s not registered", tc.flag)
			}
			if !strings.Contains(f.Usage, tc.form) {
				t.Errorf("expected usage of --%s to mention %s, got %q", tc.flag, tc.form, f.Usage)
			}
		})
	}

	clearEnv(t)
	cfg, err := ParseFlags([]string{"--debug=true"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.DebugEnabled {
		t.Error("expected --debug=true to enable debug mode")
	}
}
