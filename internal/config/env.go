package config

import "os"

const (
	EnvAddr      = "METHODTREE_ADDR"
	EnvLogLevel  = "METHODTREE_LOG_LEVEL"
	EnvLogFormat = "METHODTREE_LOG_FORMAT"
	EnvLogFile   = "METHODTREE_LOG_FILE"
)

// GetEnvStr returns string env var or fallback.
func GetEnvStr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
