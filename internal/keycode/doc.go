// Package keycode translates platform-native key symbols, button codes, and
// modifier masks into portable virtual codes.
//
// Every function in this package is pure: same inputs, same outputs, no
// hidden state. Unmapped codes resolve to defined sentinel values
// (KeyUndefined, ButtonNone) rather than errors so a capture stream never
// stalls on unrecognized hardware.
package keycode
