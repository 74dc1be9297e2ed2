// Package patrol simulates a guard walking a labmap.LabMap and searches for
// single-obstacle placements that trap the guard in a loop.
//
// What:
//
//   - Advance: one step of the guard. Looks one tile ahead; exits when the
//     tile is off the map, turns right in place when it is an obstacle,
//     otherwise records the current (position, direction) state and moves.
//     A state recorded twice means the guard is looping.
//   - Run: repeats Advance from the map's start tile (facing Up) until the
//     guard exits or loops, counting distinct tiles visited.
//   - LoopPlacements / CountLoopPlacements: for every Open tile, place one
//     extra obstacle there and Run again; collect the placements that loop.
//
// Why:
//
//   - The state space is finite (R×C×4 states), so every run terminates.
//     Loop detection is exact: a repeated state implies the walk repeats
//     from that point on forever.
//
// Concurrency:
//
//   - Run is single-threaded and touches no shared state.
//   - The placement search fans candidates out to WithWorkers goroutines.
//     Each worker owns a Clone of the map and toggles one tile at a time,
//     so no locking is needed. Results are sorted row-major, so the output
//     does not depend on scheduling.
//
// Complexity:
//
//   - Run:            O(R×C×4) steps, Memory O(R×C).
//   - LoopPlacements: O(open tiles × R×C×4), Memory O(workers × R×C).
//
// Errors:
//
//   - ErrStepLimit:     the WithMaxSteps ceiling was hit before termination.
//   - ErrNilMap:        a nil *labmap.LabMap was passed.
//   - context errors:   the WithContext context was cancelled.
//   - hook errors:      propagated from WithOnStep.
package patrol
