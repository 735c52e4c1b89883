// Package gamecode splits a combined HTML game document into its markup, style
// and script fragments and assembles fragments back into a single document.
//
// Matching is done over the raw text with case-insensitive regular
// expressions rather than a parse tree. Malformed input never fails; it
// degrades to partial or empty fragments.
package gamecode
