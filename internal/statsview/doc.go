// Package statsview serves live runtime graphs of the emulator process, such
// as heap size and goroutine count, together with the pprof endpoints.
//
// The HTTP server pulls in extra dependencies, so it is only part of builds
// made with the statsview tag:
//
//	go build -tags statsview ./cmd/chopper
//
// Without the tag, Launch only logs a warning and reports false.
package statsview
