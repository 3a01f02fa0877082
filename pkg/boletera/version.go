// Package boletera holds module-level metadata.
package boletera

// Version is the boletera release version.
const Version = "0.1.0"
