// Package names holds the static name pools used when generating pooches
// and vendors. Picks go through the caller's seeded rng so day changes
// stay reproducible.
package names

import "math/rand"

// DogNames is the pool newborn and vendor-stock pooches draw from.
var DogNames = []string{
	"Poochlet", "Muttling", "Pup", "Bean", "Nugget",
	"Biscuit", "Waffles", "Pepper", "Rufus", "Maple",
	"Ziggy", "Clover", "Bandit", "Olive", "Scout",
	"Pickles", "Mochi", "Tater", "Noodle", "Juniper",
}

// VendorFirstNames and VendorLastNames combine into vendor display names.
var VendorFirstNames = []string{
	"Barnaby", "Greta", "Horace", "Imelda", "Silas",
	"Prudence", "Otto", "Wilhelmina", "Cornelius", "Edna",
}

var VendorLastNames = []string{
	"Houndsworth", "Kibbleton", "Fetchley", "Barkmore", "Snoutfield",
	"Waggoner", "Pawlington", "Muzzleby",
}

// Sexes a generated pooch can be assigned.
var Sexes = []string{"male", "female"}

// RandomDogName picks a dog name from the pool.
func RandomDogName(rng *rand.Rand) string {
	return DogNames[rng.Intn(len(DogNames))]
}

// RandomVendorName picks a "First Last" vendor name.
func RandomVendorName(rng *rand.Rand) string {
	first := VendorFirstNames[rng.Intn(len(VendorFirstNames))]
	last := VendorLastNames[rng.Intn(len(VendorLastNames))]
	return first + " " + last
}

// RandomSex picks a sex for a generated pooch.
func RandomSex(rng *rand.Rand) string {
	return Sexes[rng.Intn(len(Sexes))]
}
