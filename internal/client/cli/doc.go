// Package cli provides the interactive Taskkeeper terminal client.
//
// It wires configuration, the local session cache, the REST API client and
// a read-eval-print loop. A session token saved by a previous run is restored
// on start and dropped as soon as the server rejects it.
//
// Commands:
//   - register / login / logout
//   - profile / editprofile
//   - list / add / show / status / delete
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
