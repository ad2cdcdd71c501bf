// Package xrecord implements the capture backend on the X11 RECORD
// extension, speaking the X protocol directly through jezek/xgb.
//
// Two connections are held open while the hook runs: the data connection
// carries the enabled interception context and blocks inside the reply
// stream, while the control connection issues the disable request that
// unblocks it. This mirrors how the RECORD extension is meant to be
// driven; a context cannot be disabled over the connection it is enabled
// on.
package xrecord
