// Package config loads and persists hookstorm settings from a JSON file.
//
// Files are read with gjson and written back with sjson so that keys the
// program does not know about survive a round trip untouched. Environment
// variables prefixed HOOKSTORM_ override file values.
package config
