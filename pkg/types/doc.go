// Package types defines the Archive interface, the Example entity, and
// standard error types for the Lambent corpus store. The corpus keeps
// analyzed lambda calculus programs — their rendered text, inferred type,
// extracted patterns, and complexity — behind a backend-agnostic interface.
package types
