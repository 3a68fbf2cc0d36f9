// Package config loads runtime configuration for the Taskkeeper client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API, e.g. http://127.0.0.1:8080/api
//	-d string   local session database file
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080/api",
//	  "local_db_path": "taskkeeper-client.db",
//	  "request_timeout": "10s"
//	}
package config
