// Package config defines the format-agnostic settings model for a citylink
// run, along with the Loader interface for reading settings from a file.
//
// Settings come from three layers: built-in defaults, an optional settings
// file, and command-line flags. Each layer only overrides the fields it
// actually sets. Concrete loaders, such as the HCL one, live in separate
// packages.
package config
