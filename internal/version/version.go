// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Live watch view, msgpack output, config file
// 0.3.0 - Ephemeris sweeps with calendar steps, skip-errors policy
// 0.2.0 - Planets, phases, rise/set
// 0.1.0 - Initial release: Sun, Moon and star coordinates, term/csv/json output
