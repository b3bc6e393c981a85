// Package estimator turns a household profile, its appliance inventory and a weekday into
// daily, per-weekday and averaged energy consumption figures.
//
// The estimate is a fixed linear formula over two constant tables: fixtures per room
// configuration and usage multipliers per weekday. Refrigerator consumption is never scaled
// by the day multiplier.
package estimator
