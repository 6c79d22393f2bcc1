/*
Package raster implements the two-color pixel grid edited by ipcli.

An Image is a rectangular grid of boolean cells addressed by column x and row y.
It always holds at least one row and one column: construction with a non-positive
dimension fails, and a resize to a non-positive dimension is rejected.

# Guarded Writes

Mutators never panic on out-of-range coordinates:

  - Negative coordinates are reported with ErrNegativeCoordinate and ignored.
  - Coordinates past the right or bottom edge are silently clipped.

This lets the algorithms in package draw overscan the canvas edges without
special-casing them.
*/
package raster
