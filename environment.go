package lastvote

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment carries the deployment configuration the engine reads at
// startup. It is plain data: the pipeline derives its operating mode
// from it but never reads the process environment directly, which
// keeps every component testable with a literal.
type Environment struct {
	// APIURL is the relay endpoint for live model responses. When set,
	// the pipeline auto-detects API mode.
	APIURL string

	// APIMode forces a pipeline mode: "api", "mock", or "fallback".
	// Empty means auto-detect.
	APIMode string

	// GeminiAPIKey authorizes the relay's upstream model calls. Only
	// the relay process needs it.
	GeminiAPIKey string

	// MockDelays enables simulated thinking delays outside api mode.
	MockDelays bool
}

// EnvironmentFromEnv loads .env if present and reads the LASTVOTE_*
// variables. Missing values are left zero; the pipeline degrades to
// fallback mode rather than failing.
func EnvironmentFromEnv() Environment {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	return Environment{
		APIURL:       getEnv("LASTVOTE_API_URL", ""),
		APIMode:      strings.ToLower(getEnv("LASTVOTE_API_MODE", "")),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		MockDelays:   toBool(getEnv("LASTVOTE_MOCK_DELAYS", "true")),
	}
}

func getEnv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return strings.TrimSpace(val)
}

func toBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
