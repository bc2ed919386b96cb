// Package breeding contains the pure eligibility rules for breeding.
// This is part of the Functional Core - no I/O, only pure functions.
package breeding

import "fmt"

// Sexes as stored on a pooch row.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// DefaultCooldown is the breeding cooldown applied to both parents after
// a successful breeding.
const DefaultCooldown = 2

// Candidate describes one prospective parent for guard evaluation.
// Populated by the caller with already-fetched pooch state.
type Candidate struct {
	PoochID     int64
	Alive       bool
	Sex         string
	Cooldown    int
	VendorOwned bool
}

// BreedContext provides the context needed to evaluate a breeding attempt.
type BreedContext struct {
	Father         Candidate
	Mother         Candidate
	MotherPregnant bool
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanBreed evaluates whether a father/mother pair may produce a pregnancy.
// Rules: both alive, father male and mother female, neither on cooldown,
// neither vendor stock, and the mother not already pregnant.
func CanBreed(ctx BreedContext) GuardResult {
	if !ctx.Father.Alive {
		return deny("father %d is dead", ctx.Father.PoochID)
	}
	if !ctx.Mother.Alive {
		return deny("mother %d is dead", ctx.Mother.PoochID)
	}
	if ctx.Father.Sex != SexMale {
		return deny("pooch %d is not male", ctx.Father.PoochID)
	}
	if ctx.Mother.Sex != SexFemale {
		return deny("pooch %d is not female", ctx.Mother.PoochID)
	}
	if ctx.Father.VendorOwned || ctx.Mother.VendorOwned {
		return deny("vendor stock cannot breed")
	}
	if ctx.Father.Cooldown > 0 {
		return deny("father %d is on breeding cooldown (%d days left)", ctx.Father.PoochID, ctx.Father.Cooldown)
	}
	if ctx.Mother.Cooldown > 0 {
		return deny("mother %d is on breeding cooldown (%d days left)", ctx.Mother.PoochID, ctx.Mother.Cooldown)
	}
	if ctx.MotherPregnant {
		return deny("mother %d is already pregnant", ctx.Mother.PoochID)
	}
	return GuardResult{Allowed: true}
}

func deny(format string, args ...any) GuardResult {
	return GuardResult{Allowed: false, Reason: fmt.Sprintf(format, args...)}
}
