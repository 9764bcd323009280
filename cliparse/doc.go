// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

The cobra root command binds its flag set and resolves a Config once at
startup:

	v := viper.New()
	cliparse.BindFlags(cmd.Flags(), v)
	cfg, err := cliparse.Load(v)

ParseFlags does the same for a bare argument slice:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Config is passed by value into the router, handlers and middleware. Nothing
reads configuration from globals after startup.

# CLI Flags

	-p, --port           Server port (default: 5000)
	    --debug          Register /app/log/access/ and /app/error (default: false)
	    --log            Access logging to database and file (default: true)
	-t, --database-type  sqlite or postgres (default: sqlite)
	-d, --database-url   Connection string or SQLite path (default: log.db)
	    --log-file       Combined-format access log (default: access.log)
	    --legacy-status  Log the pre-handler status code (default: false)
	    --trust-proxy    Log the address from X-Forwarded-For/X-Real-IP (default: false)
	    --log-level      debug, info, warn or error (default: info)
	    --env-file       dotenv file loaded at startup (default: .env)

Boolean flags take their value with "=", as in --log=false or --debug=true.
A bare --debug means true; "--debug true" is rejected as a stray argument.

# Environment Variables

Every flag falls back to an environment variable:

	PORT, DEBUG, LOG, DATABASE_TYPE, DATABASE_URL,
	LOG_FILE, LEGACY_STATUS, TRUST_PROXY, LOG_LEVEL, ENV_FILE

The env file is read first; variables already set in the process win over
it. CLI flags take precedence over both.

# Validation

Load returns a *ConfigError naming the offending field when:

  - port is outside 1-65535
  - database type is not sqlite or postgres
  - database URL is empty
  - logging is enabled without a log file
  - log level does not parse
*/
package cliparse
