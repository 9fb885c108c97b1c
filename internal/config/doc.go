// Package config resolves the process-wide directories rspass stores its
// state under.
package config
