// Package tabular decodes uploaded exports into loosely typed rows.
//
// A row maps each header label to the raw cell. CSV cells stay text; empty cells and
// the usual NA sentinels are reported as nil so the field normalizers can treat them
// as absent. JSON input (an array of objects) is accepted for API clients.
package tabular
