// Package identifier classifies and validates user identifier tokens.
//
// Both functions are pure. Classification uses the shape of the token only
// (17 digits starting with 7, 8 or 9 is canonical); validation re-checks the
// canonical shape and applies the 3-32 character alphanumeric rule to vanity
// names, collecting every failure instead of stopping at the first one.
package identifier
