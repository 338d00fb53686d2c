package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
    "time"     // time parses duration values for the rate limiter
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    DBUser        string // database username
    DBPass        string // database password (optional)
    DBHost        string // database host address
    DBPort        string // database port number
    DBName        string // database name
    JWTSecret     string // secret used to sign JWTs
    TokenTTLHours int    // access token time‑to‑live in hours
    BcryptCost    int    // bcrypt cost for password hashing
    PublicBaseURL string // base URL the QR entry links point at
    S3Endpoint    string // object storage endpoint (MinIO compatible)
    S3Region      string // object storage region
    S3Bucket      string // bucket holding generated QR images
    S3AccessKey   string // object storage access key
    S3SecretKey   string // object storage secret key
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Token TTL and bcrypt
// cost fall back to defaults so that a minimal .env still boots.
func Load() Config {
    return Config{
        Env:           must("APP_ENV"),         // environment (dev/test/prod)
        Port:          must("APP_PORT"),        // port to bind the HTTP server
        DBUser:        must("DB_USER"),         // database user
        DBPass:        os.Getenv("DB_PASS"),    // database password (empty allowed)
        DBHost:        must("DB_HOST"),         // database host
        DBPort:        must("DB_PORT"),         // database port
        DBName:        must("DB_NAME"),         // database name
        JWTSecret:     must("JWT_SECRET"),      // secret used for signing JWTs
        TokenTTLHours: envInt("TOKEN_TTL_HOURS", 24),
        BcryptCost:    envInt("BCRYPT_COST", 10),
        PublicBaseURL: must("PUBLIC_BASE_URL"), // e.g. https://bingo.example.com
        S3Endpoint:    must("S3_ENDPOINT"),     // e.g. http://localhost:9000
        S3Region:      envStr("S3_REGION", "us-east-1"),
        S3Bucket:      must("S3_BUCKET"),       // bucket for generated QR images
        S3AccessKey:   must("S3_ACCESS_KEY"),
        S3SecretKey:   must("S3_SECRET_KEY"),
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

func envStr(k, d string) string { if v := os.Getenv(k); v != "" { return v }; return d }

func envInt(k string, d int) int {
    v := os.Getenv(k); if v == "" { return d }
    if n, err := strconv.Atoi(v); err == nil { return n }
    return d
}

func envBool(k string, d bool) bool {
    v := os.Getenv(k)
    if v == "" { return d }
    switch v {
    case "1","true","TRUE","True","yes","YES","on","ON": return true
    case "0","false","FALSE","False","no","NO","off","OFF": return false
    }
    return d
}

func envDur(k string, d time.Duration) time.Duration {
    v := os.Getenv(k); if v == "" { return d }
    if dur, err := time.ParseDuration(v); err == nil { return dur }
    return d
}
