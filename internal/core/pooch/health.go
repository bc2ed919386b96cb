// Package pooch contains the pure lifecycle rules for pooches.
// This is part of the Functional Core - no I/O, only pure functions.
package pooch

// Health thresholds and lifecycle constants.
const (
	// SafeHealth is the health at or above which a pooch never dies.
	SafeHealth = 5
	// DeathChancePerDeficit is the death probability added per point of
	// health deficit below SafeHealth.
	DeathChancePerDeficit = 0.2
	// UnhealthyMax is the highest health still reported as unhealthy.
	UnhealthyMax = 3
	// OldAge is the age at which a pooch is reported as old.
	OldAge = 12
	// AgingThreshold is the age beyond which each day change adds one
	// point of age-based health loss.
	AgingThreshold = 5
	// FetalAge marks an unborn pooch.
	FetalAge = -1
)

// Status values derived from a pooch's vitals.
const (
	StatusDead      = "dead"
	StatusUnhealthy = "unhealthy"
	StatusOld       = "old"
	StatusHealthy   = "healthy"
)

// Health computes effective health from base health and accumulated
// age-based loss. Never negative.
func Health(baseHealth, healthLossAge int) int {
	h := baseHealth - healthLossAge
	if h < 0 {
		return 0
	}
	return h
}

// Status derives the display status of a pooch from its vitals.
func Status(alive bool, health, age int) string {
	switch {
	case !alive:
		return StatusDead
	case health <= UnhealthyMax:
		return StatusUnhealthy
	case age >= OldAge:
		return StatusOld
	default:
		return StatusHealthy
	}
}

// DeathChance returns the probability that a pooch with the given health
// dies on a day change. Zero at or above SafeHealth, capped at 1.0.
func DeathChance(health int) float64 {
	if health >= SafeHealth {
		return 0
	}
	if health < 0 {
		health = 0
	}
	chance := DeathChancePerDeficit * float64(SafeHealth-health)
	if chance > 1.0 {
		return 1.0
	}
	return chance
}
