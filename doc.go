// Package lvgeom is a small, dependency-light geometry toolkit.
//
// Subpackages:
//
//	square/ — area, exact decimal area, perimeter & diagonal of a square
//
// Every function validates its input and returns a sentinel error
// (match with errors.Is) instead of panicking.
//
//	go get github.com/katalvlaran/lvgeom/square
package lvgeom
