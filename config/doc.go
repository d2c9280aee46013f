// Package config loads the service configuration.
//
// Sources, later ones winning:
//   - built-in defaults
//   - an optional YAML file (missing file means defaults)
//   - an optional .env file in the working directory (via godotenv)
//   - environment variables: API_ADDR, LOG_LEVEL, LOG_FORMAT, LOG_FILE,
//     METRICS_ENABLED, METRICS_PATH
//
// Watch reloads the file on change so the log level can be adjusted
// without a restart.
package config
