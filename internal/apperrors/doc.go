// Package apperrors defines the process exit codes and the typed errors the
// CLI maps onto them.
package apperrors
