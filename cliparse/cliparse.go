package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int
	DebugEnabled bool
	LogEnabled   bool
	DatabaseType string
	DatabaseURL  string
	LogFile      string
	LegacyStatus bool
	TrustProxy   bool
	LogLevel     slog.Level
	EnvFile      string
}

// ConfigError reports an invalid setting
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// BindFlags registers every setting on flags and binds it into v.
// Each flag is backed by the environment variable of the same name,
// upper-cased with dashes turned into underscores (--log-file -> LOG_FILE).
func BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	flags.IntP("port", "p", 5000, "Server port (1-65535)")
	flags.Bool("debug", false, "Expose /app/log/access/ and /app/error (--debug or --debug=true)")
	flags.Bool("log", true, "Write access log records to the database and log file (--log=false to disable)")
	flags.StringP("database-type", "t", DatabaseSQLite, "Database type (sqlite or postgres)")
	flags.StringP("database-url", "d", "log.db", "Database URL or SQLite file path")
	flags.String("log-file", "access.log", "Combined-format access log file")
	flags.Bool("legacy-status", false, "Record the pre-handler status code in the access log (--legacy-status=true)")
	flags.Bool("trust-proxy", false, "Log the client address from X-Forwarded-For or X-Real-IP (--trust-proxy=true)")
	flags.String("log-level", "info", "Operational log level (debug, info, warn, error)")
	flags.String("env-file", ".env", "Optional dotenv file read before environment lookup")

	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// Load resolves the final Config from v.
// Precedence: CLI flag > environment (.env included) > flag default.
func Load(v *viper.Viper) (Config, error) {
	if err := loadEnvFile(v.GetString("env-file")); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:         v.GetInt("port"),
		DebugEnabled: v.GetBool("debug"),
		LogEnabled:   v.GetBool("log"),
		DatabaseType: strings.ToLower(strings.TrimSpace(v.GetString("database-type"))),
		DatabaseURL:  strings.TrimSpace(v.GetString("database-url")),
		LogFile:      strings.TrimSpace(v.GetString("log-file")),
		LegacyStatus: v.GetBool("legacy-status"),
		TrustProxy:   v.GetBool("trust-proxy"),
		EnvFile:      v.GetString("env-file"),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, &ConfigError{Field: "port", Message: fmt.Sprintf("%d is not between 1 and 65535", cfg.Port)}
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return Config{}, &ConfigError{Field: "database-type", Message: fmt.Sprintf("unsupported type %q", cfg.DatabaseType)}
	}
	if cfg.DatabaseURL == "" {
		return Config{}, &ConfigError{Field: "database-url", Message: "database URL required (use -d or DATABASE_URL env)"}
	}

	if cfg.LogEnabled && cfg.LogFile == "" {
		return Config{}, &ConfigError{Field: "log-file", Message: "log file required when logging is enabled"}
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return Config{}, &ConfigError{Field: "log-level", Message: err.Error()}
	}

	return cfg, nil
}

// ParseFlags parses args into a Config without a cobra command
func ParseFlags(args []string) (Config, error) {
	flags := pflag.NewFlagSet("coinserver", pflag.ContinueOnError)
	v := viper.New()

	if err := BindFlags(flags, v); err != nil {
		return Config{}, err
	}
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	return Load(v)
}

// loadEnvFile reads path into the process environment.
// A missing file is not an error; existing variables win over the file.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return &ConfigError{Field: "env-file", Message: err.Error()}
}
