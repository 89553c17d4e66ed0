// Package scenario builds and runs the comparison grid: panels that vary
// one quantity (field, energy, mass or charge sign) around shared
// defaults, each resolved into series of particles integrated
// concurrently by a [Runner].
package scenario
