// Package log is the logging facade for the emodel access libraries.
//
// It keeps a single process-wide leveled logger, set once at process start with
// Default, New or SetLogger, and named module loggers that prefix each message
// with the '[module]' name. Module loggers created before the process logger is
// set are rebound when SetLogger is called.
package log
