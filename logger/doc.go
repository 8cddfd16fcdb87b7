// Package logger provides structured logging on top of zerolog.
//
// Libraries receive a *Logger by injection and default to NewNop, so nothing
// is written unless the application opts in. Applications build one from
// Config:
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
//	log := logger.New(&cfg.Logging, "crous")
//	log.WithComponent("http").Debug("request done", logger.Fields("status", 200))
package logger
