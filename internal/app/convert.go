// Package app implements the application services behind the primary
// ports. Services orchestrate repositories and the pure core rules; they
// contain no SQL and no presentation.
package app

import (
	"github.com/example/poochyard/internal/core/pooch"
	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

// recordToPooch converts a stored pooch into its boundary form, deriving
// effective health and display status from the vitals.
func recordToPooch(r *secondary.PoochRecord) *primary.Pooch {
	health := pooch.Health(r.BaseHealth, r.HealthLossAge)
	return &primary.Pooch{
		ID:               r.ID,
		ServerID:         r.ServerID,
		Name:             r.Name,
		Age:              r.Age,
		Sex:              r.Sex,
		BaseHealth:       r.BaseHealth,
		HealthLossAge:    r.HealthLossAge,
		BreedingCooldown: r.BreedingCooldown,
		Alive:            r.Alive,
		Virgin:           r.Virgin,
		OwnerDiscordID:   r.OwnerDiscordID,
		VendorID:         r.VendorID,
		Health:           health,
		Status:           pooch.Status(r.Alive, health, r.Age),
		CreatedAt:        r.CreatedAt,
	}
}

func recordsToPooches(records []*secondary.PoochRecord) []*primary.Pooch {
	pooches := make([]*primary.Pooch, len(records))
	for i, r := range records {
		pooches[i] = recordToPooch(r)
	}
	return pooches
}

func recordToKennel(r *secondary.KennelRecord, occupancy int) *primary.Kennel {
	return &primary.Kennel{
		ID:             r.ID,
		ServerID:       r.ServerID,
		OwnerDiscordID: r.OwnerDiscordID,
		Name:           r.Name,
		PoochLimit:     r.PoochLimit,
		Occupancy:      occupancy,
		CreatedAt:      r.CreatedAt,
	}
}

func recordToOwner(r *secondary.OwnerRecord) *primary.Owner {
	return &primary.Owner{
		ServerID:    r.ServerID,
		DiscordID:   r.DiscordID,
		Dollars:     r.Dollars,
		Bloodskulls: r.Bloodskulls,
		CreatedAt:   r.CreatedAt,
	}
}

func recordToVendor(r *secondary.VendorRecord) *primary.Vendor {
	var mutations []string
	for _, m := range r.DesiredMutations {
		if m != nil {
			mutations = append(mutations, *m)
		}
	}
	return &primary.Vendor{
		ID:               r.ID,
		ServerID:         r.ServerID,
		Name:             r.Name,
		DesiredMutations: mutations,
		CreatedAt:        r.CreatedAt,
	}
}

func recordToServer(r *secondary.ServerRecord) *primary.Server {
	return &primary.Server{
		ID:             r.ID,
		EventChannelID: r.EventChannelID,
		CreatedAt:      r.CreatedAt,
	}
}
