package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  It is built once at process start and
// passed by reference into the components that need it; nothing reads
// configuration from ambient globals after Load returns.
type Config struct {
    Env   string      // application environment (e.g. "dev", "prod")
    Port  string      // HTTP port to listen on
    Store StoreConfig // store endpoint and credentials
    Slots SlotsConfig // slot generation window and grid
}

// StoreConfig carries the store endpoint and credential values.  Unlike
// the rest of the configuration these are not enforced with must():
// when they are missing the application still starts and every store
// operation degrades to failure instead of crashing the shell.
type StoreConfig struct {
    User string // database username
    Pass string // database password (optional)
    Host string // database host address
    Port string // database port number
    Name string // database name
}

// Complete reports whether the endpoint and credential values needed to
// reach the store are all present.
func (s StoreConfig) Complete() bool {
    return s.User != "" && s.Host != "" && s.Port != "" && s.Name != ""
}

// SlotsConfig controls the working-hour grid used when bulk-generating
// availability: slots run from StartHour (inclusive) to EndHour
// (exclusive) stepping by IntervalMinutes, for WindowDays consecutive
// days starting today.
type SlotsConfig struct {
    StartHour       int // first bookable hour of the day
    EndHour         int // hour the working window ends (exclusive)
    IntervalMinutes int // grid step in minutes
    WindowDays      int // number of days covered by bulk generation
}

// Load reads configuration values from environment variables and returns
// a Config.  The HTTP port is required; store values are optional and
// their absence is reported by StoreConfig.Complete.
func Load() Config {
    return Config{
        Env:  envStr("APP_ENV", "dev"),   // environment (dev/test/prod)
        Port: must("APP_PORT"),           // port to bind the HTTP server
        Store: StoreConfig{
            User: os.Getenv("DB_USER"), // database user
            Pass: os.Getenv("DB_PASS"), // database password (empty allowed)
            Host: os.Getenv("DB_HOST"), // database host
            Port: os.Getenv("DB_PORT"), // database port
            Name: os.Getenv("DB_NAME"), // database name
        },
        Slots: SlotsConfig{
            StartHour:       envInt("SLOT_START_HOUR", 9),        // default 09:00 opening
            EndHour:         envInt("SLOT_END_HOUR", 17),         // default 17:00 closing
            IntervalMinutes: envInt("SLOT_INTERVAL_MINUTES", 30), // default 30 minute grid
            WindowDays:      envInt("SLOT_WINDOW_DAYS", 30),      // default rolling 30 days
        },
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
