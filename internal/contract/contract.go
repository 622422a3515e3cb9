// Package contract holds the validated runtime configuration and the shared
// helpers the commands and writers agree on.
package contract
