// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// merges flags, environment variables and an optional dotenv file into the
// application's configuration; explicit flags always win.
package cli
