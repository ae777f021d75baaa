// Package receiver defines the receiver state snapshot pushed by the SIGNET-RX
// backend and the wire envelope it travels in.
//
// All fields are optional. A missing number reads as 0, missing text as "",
// and a missing flag as false; accessors are safe on a nil *State so callers
// can render before the first delivery without special cases.
package receiver
