// Package lvpatrol is a small simulator for a lab guard who walks a grid,
// turning right at every obstacle, until it leaves the map or starts
// repeating itself.
//
// What is in the module?
//
//	• labmap/  — parse and validate the lab map ('#' obstacle, '^' start)
//	• patrol/  — guard stepping, loop detection, obstacle-placement search
//	• config/  — YAML settings with dev/prod input profiles
//	• logging/ — zap logger construction
//	• cmd/patrol — the command-line front end
//
// Quick ASCII example:
//
//	....#.....
//	....^....#
//
// The guard starts at '^' facing up, sees '#' ahead and turns right. It
// walks east until the second '#', turns to face south and steps off the
// map, having visited five tiles.
//
//	go run ./cmd/patrol --profile dev
package lvpatrol
