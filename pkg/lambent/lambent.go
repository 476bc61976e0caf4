// Package lambent holds module-wide metadata.
package lambent

// Version is the lambent release version.
const Version = "v0.1.0"
