// Package logger provides structured logging for scorepipe using zerolog.
//
// It supports JSON and console output formats, level configuration, and
// component-scoped loggers with structured fields.
//
// Per-record rejection in the cleansing pipeline is never logged; rejection
// is silent by contract. Logging covers lifecycle events: configuration
// load, dataset generation, strategy runs, and HTTP requests.
package logger
