// Package commands defines the galaxyplot CLI and wires the catalog, the
// plotter and a host runner together.
//
// Commands
//
//   - (root)   Ask for a galaxy and show its rotation, mass and composition panels
//   - list     Print the galaxies the catalog knows
//   - version  Print the build identifier
//
// # Configuration
//
// Settings are read from GALAXYPLOT_* environment variables first. Flags given
// on the command line override them.
package commands
