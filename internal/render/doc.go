// Package render turns binding results and registries into text for a
// terminal. The argbind package itself never writes output.
package render
