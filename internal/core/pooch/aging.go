package pooch

// Vitals holds the mutable day-change fields of a pooch.
type Vitals struct {
	Age              int
	HealthLossAge    int
	BreedingCooldown int
}

// AdvanceDay returns the vitals after one day change: cooldown steps
// toward zero, age advances by one, and age-based health loss accrues
// once the new age exceeds AgingThreshold.
func AdvanceDay(v Vitals) Vitals {
	if v.BreedingCooldown > 0 {
		v.BreedingCooldown--
	}
	v.Age++
	if v.Age > AgingThreshold {
		v.HealthLossAge++
	}
	return v
}

// IsFetal reports whether a pooch with the given age is still unborn.
func IsFetal(age int) bool {
	return age < 0
}
