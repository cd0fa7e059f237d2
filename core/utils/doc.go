// Package utils provides the field normalization helpers shared by the importers.
//
// Raw cells arrive with unknown types (text, numbers, NaN sentinels, nothing at all).
// CleanValue, ParseDate and ParseBool turn them into nullable strings, nullable
// timestamps and booleans without ever returning an error: malformed input degrades
// to nil or false.
package utils
