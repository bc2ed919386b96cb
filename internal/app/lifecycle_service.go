package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/example/poochyard/internal/core/economy"
	"github.com/example/poochyard/internal/core/pooch"
	"github.com/example/poochyard/internal/names"
	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

// LifecycleServiceImpl implements the LifecycleService interface: the
// day-change engine. One run advances every server by one simulated day
// in three phases: birth resolution, aging and death resolution, vendor
// restock.
//
// All randomness flows through a single generator built from the run's
// seed. Draw order is fixed, so identical seeds over identical data
// replay identically. Each mutation commits on its own; a crash mid-run
// leaves prior mutations in place, and the next run picks up the
// remaining pregnancies.
type LifecycleServiceImpl struct {
	serverRepo    secondary.ServerRepository
	ownerRepo     secondary.OwnerRepository
	poochRepo     secondary.PoochRepository
	pregnancyRepo secondary.PregnancyRepository
	kennelRepo    secondary.KennelRepository
	vendorRepo    secondary.VendorRepository
	graveyardRepo secondary.GraveyardRepository
	logger        *slog.Logger
}

// NewLifecycleService creates a new LifecycleService with injected
// dependencies.
func NewLifecycleService(
	serverRepo secondary.ServerRepository,
	ownerRepo secondary.OwnerRepository,
	poochRepo secondary.PoochRepository,
	pregnancyRepo secondary.PregnancyRepository,
	kennelRepo secondary.KennelRepository,
	vendorRepo secondary.VendorRepository,
	graveyardRepo secondary.GraveyardRepository,
	logger *slog.Logger,
) *LifecycleServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &LifecycleServiceImpl{
		serverRepo:    serverRepo,
		ownerRepo:     ownerRepo,
		poochRepo:     poochRepo,
		pregnancyRepo: pregnancyRepo,
		kennelRepo:    kennelRepo,
		vendorRepo:    vendorRepo,
		graveyardRepo: graveyardRepo,
		logger:        logger,
	}
}

// RunDayChange executes one full day-change cycle.
func (s *LifecycleServiceImpl) RunDayChange(ctx context.Context, seed int64) (map[int64]*primary.DayChangeSummary, error) {
	rng := rand.New(rand.NewSource(seed))

	servers, err := s.serverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	summaries := make(map[int64]*primary.DayChangeSummary, len(servers))
	for _, server := range servers {
		summaries[server.ID] = &primary.DayChangeSummary{ServerID: server.ID}
	}

	if err := s.resolveBirths(ctx, rng, summaries); err != nil {
		return nil, err
	}
	if err := s.resolveAging(ctx, rng, summaries); err != nil {
		return nil, err
	}
	for _, server := range servers {
		if err := restockServer(ctx, s.vendorRepo, s.poochRepo, server.ID, rng); err != nil {
			return nil, fmt.Errorf("restock failed for server %d: %w", server.ID, err)
		}
	}

	s.logger.Info("day change complete", "servers", len(servers), "seed", seed)
	return summaries, nil
}

// resolveBirths turns every pending pregnancy into a newborn. The
// pregnancy row is consumed before the fetus materializes, so a birth
// can never double-fire. Kennel placement follows the mother: no kennel
// means an abandoned newborn, a full kennel means a crushed one; both
// are outcomes, not errors.
func (s *LifecycleServiceImpl) resolveBirths(ctx context.Context, rng *rand.Rand, summaries map[int64]*primary.DayChangeSummary) error {
	pregnancies, err := s.pregnancyRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pregnancies: %w", err)
	}

	for _, pregnancy := range pregnancies {
		summary, ok := summaries[pregnancy.ServerID]
		if !ok {
			// Pregnancy on a server the store no longer knows. Drop it
			// without consuming any draws.
			s.logger.Warn("dropping pregnancy on unknown server",
				"server", pregnancy.ServerID, "fetus", pregnancy.FetusID)
			if err := s.discard(ctx, pregnancy); err != nil {
				return err
			}
			continue
		}

		mother, err := s.poochRepo.GetByID(ctx, pregnancy.ServerID, pregnancy.MotherID)
		if errors.Is(err, secondary.ErrNotFound) {
			s.logger.Warn("dropping pregnancy with missing mother",
				"server", pregnancy.ServerID, "mother", pregnancy.MotherID)
			if err := s.discard(ctx, pregnancy); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to get mother %d: %w", pregnancy.MotherID, err)
		}

		// Consume the pregnancy before the fetus materializes.
		if err := s.pregnancyRepo.Delete(ctx, pregnancy.ServerID, pregnancy.MotherID, pregnancy.FetusID); err != nil {
			if errors.Is(err, secondary.ErrNotFound) {
				continue
			}
			return fmt.Errorf("failed to consume pregnancy: %w", err)
		}

		name := names.RandomDogName(rng)
		sex := names.RandomSex(rng)
		baseHealth := economy.RollBaseHealth(rng)

		err = s.poochRepo.Materialize(ctx, pregnancy.ServerID, pregnancy.FetusID,
			name, sex, baseHealth, mother.OwnerDiscordID)
		if errors.Is(err, secondary.ErrNotFound) {
			// The fetus row is gone or already born. The pregnancy is
			// consumed either way.
			s.logger.Warn("skipping birth with missing fetus",
				"server", pregnancy.ServerID, "fetus", pregnancy.FetusID)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to materialize fetus %d: %w", pregnancy.FetusID, err)
		}

		outcome, err := s.placeNewborn(ctx, pregnancy.ServerID, pregnancy.MotherID, pregnancy.FetusID)
		if err != nil {
			return err
		}

		summary.Births = append(summary.Births, primary.BirthEvent{
			ServerID: pregnancy.ServerID,
			MotherID: pregnancy.MotherID,
			ChildID:  pregnancy.FetusID,
			Outcome:  outcome,
		})
		s.logger.Info("pooch born",
			"server", pregnancy.ServerID, "child", pregnancy.FetusID,
			"mother", pregnancy.MotherID, "outcome", string(outcome))
	}

	return nil
}

// placeNewborn puts the newborn in its mother's kennel when there is
// room. An unkenneled mother means an abandoned newborn and a full
// kennel means a crushed one; those are outcomes. Store failures are
// not outcomes and propagate to abort the run.
func (s *LifecycleServiceImpl) placeNewborn(ctx context.Context, serverID, motherID, childID int64) (primary.BirthOutcome, error) {
	kennel, err := s.kennelRepo.GetPoochKennel(ctx, serverID, motherID)
	if errors.Is(err, secondary.ErrNotFound) {
		return primary.BirthAbandoned, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get kennel for mother %d: %w", motherID, err)
	}

	occupancy, err := s.kennelRepo.CountMembers(ctx, serverID, kennel.ID)
	if err != nil {
		return "", fmt.Errorf("failed to count kennel %d members: %w", kennel.ID, err)
	}
	if occupancy >= kennel.PoochLimit {
		return primary.BirthCrushed, nil
	}

	err = s.kennelRepo.AddPooch(ctx, serverID, kennel.ID, childID)
	if errors.Is(err, secondary.ErrConstraint) {
		s.logger.Warn("newborn already kenneled, leaving membership as is",
			"server", serverID, "child", childID, "kennel", kennel.ID)
		return primary.BirthPlaced, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to kennel newborn %d: %w", childID, err)
	}
	return primary.BirthPlaced, nil
}

// resolveAging advances every living pooch by one day and rolls for
// death. Listing happens after the birth phase, so a same-day newborn
// ages from zero to one immediately. The death draw is consumed only
// when health is below the safe threshold, which keeps healthy pooches
// out of the random stream entirely.
func (s *LifecycleServiceImpl) resolveAging(ctx context.Context, rng *rand.Rand, summaries map[int64]*primary.DayChangeSummary) error {
	living, err := s.poochRepo.ListAlive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list living pooches: %w", err)
	}

	for _, record := range living {
		summary, ok := summaries[record.ServerID]
		if !ok {
			continue
		}

		vitals := pooch.AdvanceDay(pooch.Vitals{
			Age:              record.Age,
			HealthLossAge:    record.HealthLossAge,
			BreedingCooldown: record.BreedingCooldown,
		})

		err := s.poochRepo.UpdateVitals(ctx, record.ServerID, record.ID,
			vitals.Age, vitals.HealthLossAge, vitals.BreedingCooldown)
		if errors.Is(err, secondary.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to age pooch %d: %w", record.ID, err)
		}

		health := pooch.Health(record.BaseHealth, vitals.HealthLossAge)
		if health >= pooch.SafeHealth {
			continue
		}

		if rng.Float64() >= pooch.DeathChance(health) {
			continue
		}

		if err := s.recordDeath(ctx, record); err != nil {
			return err
		}
		summary.Deaths = append(summary.Deaths, primary.DeathEvent{
			ServerID: record.ServerID,
			PoochID:  record.ID,
		})
		s.logger.Info("pooch died",
			"server", record.ServerID, "pooch", record.ID,
			"age", vitals.Age, "health", health)
	}

	return nil
}

// recordDeath marks the pooch dead, frees its kennel slot, and buries it
// for its owner. Each fresh grave earns the owner one bloodskull.
// Ownerless pooches get no grave and pay out nothing.
func (s *LifecycleServiceImpl) recordDeath(ctx context.Context, record *secondary.PoochRecord) error {
	if err := s.poochRepo.MarkDead(ctx, record.ServerID, record.ID); err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to mark pooch %d dead: %w", record.ID, err)
	}

	if err := s.kennelRepo.RemovePooch(ctx, record.ServerID, record.ID); err != nil {
		return fmt.Errorf("failed to free kennel slot: %w", err)
	}

	if record.OwnerDiscordID != nil {
		err := s.graveyardRepo.Bury(ctx, &secondary.GraveyardRecord{
			ServerID:       record.ServerID,
			OwnerDiscordID: *record.OwnerDiscordID,
			PoochID:        record.ID,
		})
		if err != nil {
			if errors.Is(err, secondary.ErrConstraint) {
				return nil
			}
			return fmt.Errorf("failed to bury pooch %d: %w", record.ID, err)
		}

		err = s.ownerRepo.AdjustBloodskulls(ctx, record.ServerID, *record.OwnerDiscordID, 1)
		if err != nil && !errors.Is(err, secondary.ErrNotFound) {
			return fmt.Errorf("failed to credit bloodskull: %w", err)
		}
	}

	return nil
}

// discard removes a pregnancy that can never resolve.
func (s *LifecycleServiceImpl) discard(ctx context.Context, pregnancy *secondary.PregnancyRecord) error {
	err := s.pregnancyRepo.Delete(ctx, pregnancy.ServerID, pregnancy.MotherID, pregnancy.FetusID)
	if err != nil && !errors.Is(err, secondary.ErrNotFound) {
		return fmt.Errorf("failed to discard pregnancy: %w", err)
	}
	return nil
}

// Ensure LifecycleServiceImpl implements the interface
var _ primary.LifecycleService = (*LifecycleServiceImpl)(nil)
