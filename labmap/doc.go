// Package labmap models the lab floor a guard patrols: a rectangular grid
// of tiles, each Open, Obstacle, or the single Start tile.
//
// What:
//
//   - LabMap wraps a validated, rectangular grid stored row-major.
//   - Parse / ReadFile / New build a map from text, one row per line:
//     '#' is an Obstacle, '^' is the Start tile, anything else is Open.
//   - Clone, Set and WithObstacle derive modified maps for what-if runs.
//   - OpenTiles enumerates the candidate tiles for an extra obstacle.
//   - Render draws the map back as text with optional overlay glyphs.
//
// Why:
//
//   - Keep input validation in one place so the simulator can assume a
//     well-formed grid and never check for ragged rows or a missing start.
//
// Complexity:
//
//   - Parse / New:  O(R×C) time and memory.
//   - Clone:        O(R×C).
//   - InBounds, At: O(1).
//
// Errors:
//
//   - *MalformedGridError wrapping one of:
//     ErrEmptyGrid, ErrNonRectangular, ErrNoStart, ErrMultipleStarts.
//   - ErrOutOfBounds: Set / WithObstacle outside the map.
//   - ErrNotOpen:     WithObstacle on the Start tile or an existing obstacle.
package labmap
