// Package logx wraps zerolog behind a small structured-logging API.
//
// The Service owns the configured sinks (console, file) and can swap them at
// runtime via Apply; Loggers handed out by the Service keep pointing at the
// current root, so hot config reloads take effect everywhere at once.
package logx
