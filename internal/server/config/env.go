package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name read by parseEnv,
// e.g. TASKKEEPER_DATABASE_DSN.
const EnvPrefix = "TASKKEEPER_"

// parseEnv overlays fields whose environment variables are set. Unset
// variables leave the current value untouched. Malformed values panic, like
// the other loaders, since the server cannot start with them.
func parseEnv(config *Config) {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
