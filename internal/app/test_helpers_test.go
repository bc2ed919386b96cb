package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/poochyard/internal/ports/secondary"
)

// memStore is an in-memory implementation of every secondary repository,
// shared by the service tests. Ordering mirrors the SQL adapters:
// surrogate IDs increase in creation order, lists sort by (server, id)
// or insertion where the port says so. Set failure to simulate a store
// outage; every call returns it.
type memStore struct {
	failure error

	servers     map[int64]*secondary.ServerRecord
	owners      map[memKey]*secondary.OwnerRecord
	pooches     map[memKey]*secondary.PoochRecord
	kennels     map[memKey]*secondary.KennelRecord
	vendors     map[memKey]*secondary.VendorRecord
	parentage   map[memKey]*secondary.ParentageRecord
	pregnancies []*secondary.PregnancyRecord
	memberships map[memKey]int64 // pooch -> kennel
	stock       map[memKey]*secondary.VendorStockRecord
	graves      []*secondary.GraveyardRecord

	nextID int64
}

type memKey struct {
	server int64
	id     int64
}

func newMemStore() *memStore {
	return &memStore{
		servers:     make(map[int64]*secondary.ServerRecord),
		owners:      make(map[memKey]*secondary.OwnerRecord),
		pooches:     make(map[memKey]*secondary.PoochRecord),
		kennels:     make(map[memKey]*secondary.KennelRecord),
		vendors:     make(map[memKey]*secondary.VendorRecord),
		parentage:   make(map[memKey]*secondary.ParentageRecord),
		memberships: make(map[memKey]int64),
		stock:       make(map[memKey]*secondary.VendorStockRecord),
	}
}

func (m *memStore) allocID() int64 {
	m.nextID++
	return m.nextID
}

// --- ServerRepository ---

func (m *memStore) Create(ctx context.Context, server *secondary.ServerRecord) error {
	if m.failure != nil {
		return m.failure
	}
	if _, ok := m.servers[server.ID]; ok {
		return secondary.ErrConstraint
	}
	copied := *server
	m.servers[server.ID] = &copied
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id int64) (*secondary.ServerRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	record, ok := m.servers[id]
	if !ok {
		return nil, fmt.Errorf("server %d: %w", id, secondary.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (m *memStore) List(ctx context.Context) ([]*secondary.ServerRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.ServerRecord
	for _, record := range m.servers {
		copied := *record
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) SetEventChannel(ctx context.Context, serverID, channelID int64) error {
	if m.failure != nil {
		return m.failure
	}
	record, ok := m.servers[serverID]
	if !ok {
		return fmt.Errorf("server %d: %w", serverID, secondary.ErrNotFound)
	}
	record.EventChannelID = &channelID
	return nil
}

// serverRepo wraps memStore so the Create method names don't collide
// between repository interfaces.
type serverRepo struct{ *memStore }

var _ secondary.ServerRepository = serverRepo{}

// --- OwnerRepository ---

type ownerRepo struct{ *memStore }

var _ secondary.OwnerRepository = ownerRepo{}

func (m ownerRepo) Create(ctx context.Context, owner *secondary.OwnerRecord) error {
	if m.failure != nil {
		return m.failure
	}
	key := memKey{owner.ServerID, owner.DiscordID}
	if _, ok := m.owners[key]; ok {
		return secondary.ErrConstraint
	}
	copied := *owner
	m.owners[key] = &copied
	return nil
}

func (m ownerRepo) Get(ctx context.Context, serverID, discordID int64) (*secondary.OwnerRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	record, ok := m.owners[memKey{serverID, discordID}]
	if !ok {
		return nil, fmt.Errorf("owner %d: %w", discordID, secondary.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (m ownerRepo) ListByServer(ctx context.Context, serverID int64) ([]*secondary.OwnerRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.OwnerRecord
	for key, record := range m.owners {
		if key.server == serverID {
			copied := *record
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DiscordID < out[j].DiscordID })
	return out, nil
}

func (m ownerRepo) AdjustDollars(ctx context.Context, serverID, discordID int64, delta int64) error {
	if m.failure != nil {
		return m.failure
	}
	record, ok := m.owners[memKey{serverID, discordID}]
	if !ok {
		return fmt.Errorf("owner %d: %w", discordID, secondary.ErrNotFound)
	}
	record.Dollars += delta
	return nil
}

func (m ownerRepo) AdjustBloodskulls(ctx context.Context, serverID, discordID int64, delta int64) error {
	if m.failure != nil {
		return m.failure
	}
	record, ok := m.owners[memKey{serverID, discordID}]
	if !ok {
		return fmt.Errorf("owner %d: %w", discordID, secondary.ErrNotFound)
	}
	record.Bloodskulls += delta
	return nil
}

func (m ownerRepo) Delete(ctx context.Context, serverID, discordID int64) error {
	if m.failure != nil {
		return m.failure
	}
	key := memKey{serverID, discordID}
	if _, ok := m.owners[key]; !ok {
		return fmt.Errorf("owner %d: %w", discordID, secondary.ErrNotFound)
	}
	for kennelKey, kennel := range m.kennels {
		if kennel.ServerID == serverID && kennel.OwnerDiscordID == discordID {
			for poochKey, kennelID := range m.memberships {
				if poochKey.server == serverID && kennelID == kennel.ID {
					delete(m.memberships, poochKey)
				}
			}
			delete(m.kennels, kennelKey)
		}
	}
	delete(m.owners, key)
	return nil
}

// --- PoochRepository ---

type poochRepo struct{ *memStore }

var _ secondary.PoochRepository = poochRepo{}

func (m poochRepo) Create(ctx context.Context, record *secondary.PoochRecord) (int64, error) {
	if m.failure != nil {
		return 0, m.failure
	}
	if record.OwnerDiscordID != nil && record.VendorID != nil {
		return 0, secondary.ErrConstraint
	}
	copied := *record
	copied.ID = m.allocID()
	m.pooches[memKey{record.ServerID, copied.ID}] = &copied
	return copied.ID, nil
}

func (m poochRepo) GetByID(ctx context.Context, serverID, id int64) (*secondary.PoochRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	record, ok := m.pooches[memKey{serverID, id}]
	if !ok {
		return nil, fmt.Errorf("pooch %d: %w", id, secondary.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (m poochRepo) ListAlive(ctx context.Context) ([]*secondary.PoochRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.PoochRecord
	for _, record := range m.pooches {
		if record.Alive && record.Age >= 0 {
			copied := *record
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ServerID != out[j].ServerID {
			return out[i].ServerID < out[j].ServerID
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m poochRepo) ListByOwner(ctx context.Context, serverID, ownerDiscordID int64) ([]*secondary.PoochRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.PoochRecord
	for _, record := range m.pooches {
		if record.ServerID == serverID && record.Alive &&
			record.OwnerDiscordID != nil && *record.OwnerDiscordID == ownerDiscordID {
			copied := *record
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m poochRepo) UpdateVitals(ctx context.Context, serverID, id int64, age, healthLossAge, breedingCooldown int) error {
	if m.failure != nil {
		return m.failure
	}
	record, ok := m.pooches[memKey{serverID, id}]
	if !ok {
		return fmt.Errorf("pooch %d: %w", id, secondary.ErrNotFound)
	}
	record.Age = age
	record.HealthLossAge = healthLossAge
	record.BreedingCooldown = breedingCooldown
	return nil
}

func (m poochRepo) SetCooldown(ctx context.Context, serverID, id int64, cooldown int) error {
	if m.failure != nil {
		return m.failure
	}
	record, ok := m.pooches[memKey{serverID, id}]
	if !ok {
		return fmt.Errorf("pooch %d: %w", id, secondary.ErrNotFound)
	}
	record.BreedingCooldown = cooldown
	return nil
}

func (m poochRepo) ClearVirgin(ctx context.Context, serverID, id int64) error {
	if m.failure != nil {
		return m.failure
	}
	record, ok := m.pooches[memKey{serverID, id}]
	if !ok {
		return fmt.Errorf("pooch %d: %w", id, secondary.ErrNotFound)
	}
	record.Virgin = false
	return nil
}

func (m poochRepo) MarkDead(ctx context.Context, serverID, id int64) error {
	if m.failure != nil {
		return m.failure
	}
	record, ok := m.pooches[memKey{serverID, id}]
	if !ok {
		return fmt.Errorf("pooch %d: %w", id, secondary.ErrNotFound)
	}
	record.Alive = false
	return nil
}

func (m poochRepo) Materialize(ctx context.Context, serverID, id int64, name, sex string, baseHealth int, ownerDiscordID *int64) error {
	if m.failure != nil {
		return m.failure
	}
	record, ok := m.pooches[memKey{serverID, id}]
	if !ok || record.Age != -1 {
		return fmt.Errorf("fetal pooch %d: %w", id, secondary.ErrNotFound)
	}
	record.Age = 0
	record.Name = name
	record.Sex = sex
	record.BaseHealth = baseHealth
	record.OwnerDiscordID = ownerDiscordID
	record.VendorID = nil
	return nil
}

func (m poochRepo) TransferToOwner(ctx context.Context, serverID, id, ownerDiscordID int64) error {
	if m.failure != nil {
		return m.failure
	}
	record, ok := m.pooches[memKey{serverID, id}]
	if !ok {
		return fmt.Errorf("pooch %d: %w", id, secondary.ErrNotFound)
	}
	record.OwnerDiscordID = &ownerDiscordID
	record.VendorID = nil
	return nil
}

func (m poochRepo) Delete(ctx context.Context, serverID, id int64) error {
	if m.failure != nil {
		return m.failure
	}
	key := memKey{serverID, id}
	if _, ok := m.pooches[key]; !ok {
		return fmt.Errorf("pooch %d: %w", id, secondary.ErrNotFound)
	}
	delete(m.pooches, key)
	return nil
}

// --- KennelRepository ---

type kennelRepo struct{ *memStore }

var _ secondary.KennelRepository = kennelRepo{}

func (m kennelRepo) Create(ctx context.Context, record *secondary.KennelRecord) (int64, error) {
	if m.failure != nil {
		return 0, m.failure
	}
	copied := *record
	copied.ID = m.allocID()
	m.kennels[memKey{record.ServerID, copied.ID}] = &copied
	return copied.ID, nil
}

func (m kennelRepo) GetByID(ctx context.Context, serverID, id int64) (*secondary.KennelRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	record, ok := m.kennels[memKey{serverID, id}]
	if !ok {
		return nil, fmt.Errorf("kennel %d: %w", id, secondary.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (m kennelRepo) ListByOwner(ctx context.Context, serverID, ownerDiscordID int64) ([]*secondary.KennelRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.KennelRecord
	for _, record := range m.kennels {
		if record.ServerID == serverID && record.OwnerDiscordID == ownerDiscordID {
			copied := *record
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m kennelRepo) ListMembers(ctx context.Context, serverID, kennelID int64) ([]*secondary.PoochRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.PoochRecord
	for poochKey, id := range m.memberships {
		if poochKey.server == serverID && id == kennelID {
			if record, ok := m.pooches[poochKey]; ok {
				copied := *record
				out = append(out, &copied)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m kennelRepo) CountMembers(ctx context.Context, serverID, kennelID int64) (int, error) {
	if m.failure != nil {
		return 0, m.failure
	}
	count := 0
	for poochKey, id := range m.memberships {
		if poochKey.server == serverID && id == kennelID {
			count++
		}
	}
	return count, nil
}

func (m kennelRepo) GetPoochKennel(ctx context.Context, serverID, poochID int64) (*secondary.KennelRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	kennelID, ok := m.memberships[memKey{serverID, poochID}]
	if !ok {
		return nil, fmt.Errorf("kennel for pooch %d: %w", poochID, secondary.ErrNotFound)
	}
	record, ok := m.kennels[memKey{serverID, kennelID}]
	if !ok {
		return nil, fmt.Errorf("kennel %d: %w", kennelID, secondary.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (m kennelRepo) AddPooch(ctx context.Context, serverID, kennelID, poochID int64) error {
	if m.failure != nil {
		return m.failure
	}
	key := memKey{serverID, poochID}
	if _, ok := m.memberships[key]; ok {
		return secondary.ErrConstraint
	}
	m.memberships[key] = kennelID
	return nil
}

func (m kennelRepo) RemovePooch(ctx context.Context, serverID, poochID int64) error {
	if m.failure != nil {
		return m.failure
	}
	delete(m.memberships, memKey{serverID, poochID})
	return nil
}

func (m kennelRepo) Delete(ctx context.Context, serverID, id int64) error {
	if m.failure != nil {
		return m.failure
	}
	key := memKey{serverID, id}
	if _, ok := m.kennels[key]; !ok {
		return fmt.Errorf("kennel %d: %w", id, secondary.ErrNotFound)
	}
	for poochKey, kennelID := range m.memberships {
		if poochKey.server == serverID && kennelID == id {
			delete(m.memberships, poochKey)
		}
	}
	delete(m.kennels, key)
	return nil
}

// --- ParentageRepository ---

type parentageRepo struct{ *memStore }

var _ secondary.ParentageRepository = parentageRepo{}

func (m parentageRepo) Create(ctx context.Context, record *secondary.ParentageRecord) error {
	if m.failure != nil {
		return m.failure
	}
	key := memKey{record.ServerID, record.ChildID}
	if _, ok := m.parentage[key]; ok {
		return secondary.ErrConstraint
	}
	copied := *record
	m.parentage[key] = &copied
	return nil
}

func (m parentageRepo) GetByChild(ctx context.Context, serverID, childID int64) (*secondary.ParentageRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	record, ok := m.parentage[memKey{serverID, childID}]
	if !ok {
		return nil, fmt.Errorf("parentage for pooch %d: %w", childID, secondary.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (m parentageRepo) ListChildren(ctx context.Context, serverID, parentID int64) ([]*secondary.PoochRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.PoochRecord
	for _, row := range m.parentage {
		if row.ServerID != serverID {
			continue
		}
		isParent := (row.FatherID != nil && *row.FatherID == parentID) ||
			(row.MotherID != nil && *row.MotherID == parentID)
		if !isParent {
			continue
		}
		if record, ok := m.pooches[memKey{serverID, row.ChildID}]; ok {
			copied := *record
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m parentageRepo) ListFullSiblings(ctx context.Context, serverID, fatherID, motherID, excludeID int64) ([]*secondary.PoochRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.PoochRecord
	for _, row := range m.parentage {
		if row.ServerID != serverID || row.ChildID == excludeID {
			continue
		}
		if row.FatherID == nil || *row.FatherID != fatherID {
			continue
		}
		if row.MotherID == nil || *row.MotherID != motherID {
			continue
		}
		if record, ok := m.pooches[memKey{serverID, row.ChildID}]; ok {
			copied := *record
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- PregnancyRepository ---

type pregnancyRepo struct{ *memStore }

var _ secondary.PregnancyRepository = pregnancyRepo{}

func (m pregnancyRepo) Create(ctx context.Context, record *secondary.PregnancyRecord) error {
	if m.failure != nil {
		return m.failure
	}
	for _, existing := range m.pregnancies {
		if existing.ServerID == record.ServerID && existing.FetusID == record.FetusID {
			return secondary.ErrConstraint
		}
	}
	copied := *record
	m.pregnancies = append(m.pregnancies, &copied)
	return nil
}

func (m pregnancyRepo) List(ctx context.Context) ([]*secondary.PregnancyRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	out := make([]*secondary.PregnancyRecord, len(m.pregnancies))
	for i, record := range m.pregnancies {
		copied := *record
		out[i] = &copied
	}
	return out, nil
}

func (m pregnancyRepo) MotherIsPregnant(ctx context.Context, serverID, motherID int64) (bool, error) {
	if m.failure != nil {
		return false, m.failure
	}
	for _, record := range m.pregnancies {
		if record.ServerID == serverID && record.MotherID == motherID {
			return true, nil
		}
	}
	return false, nil
}

func (m pregnancyRepo) Delete(ctx context.Context, serverID, motherID, fetusID int64) error {
	if m.failure != nil {
		return m.failure
	}
	for i, record := range m.pregnancies {
		if record.ServerID == serverID && record.MotherID == motherID && record.FetusID == fetusID {
			m.pregnancies = append(m.pregnancies[:i], m.pregnancies[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("pregnancy for fetus %d: %w", fetusID, secondary.ErrNotFound)
}

// --- VendorRepository ---

type vendorRepo struct{ *memStore }

var _ secondary.VendorRepository = vendorRepo{}

func (m vendorRepo) Create(ctx context.Context, record *secondary.VendorRecord) (int64, error) {
	if m.failure != nil {
		return 0, m.failure
	}
	copied := *record
	copied.ID = m.allocID()
	m.vendors[memKey{record.ServerID, copied.ID}] = &copied
	return copied.ID, nil
}

func (m vendorRepo) GetByID(ctx context.Context, serverID, id int64) (*secondary.VendorRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	record, ok := m.vendors[memKey{serverID, id}]
	if !ok {
		return nil, fmt.Errorf("vendor %d: %w", id, secondary.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (m vendorRepo) ListByServer(ctx context.Context, serverID int64) ([]*secondary.VendorRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.VendorRecord
	for _, record := range m.vendors {
		if record.ServerID == serverID {
			copied := *record
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m vendorRepo) CountByServer(ctx context.Context, serverID int64) (int, error) {
	if m.failure != nil {
		return 0, m.failure
	}
	count := 0
	for _, record := range m.vendors {
		if record.ServerID == serverID {
			count++
		}
	}
	return count, nil
}

func (m vendorRepo) AddStock(ctx context.Context, record *secondary.VendorStockRecord) error {
	if m.failure != nil {
		return m.failure
	}
	key := memKey{record.ServerID, record.PoochID}
	if _, ok := m.stock[key]; ok {
		return secondary.ErrConstraint
	}
	copied := *record
	m.stock[key] = &copied
	return nil
}

func (m vendorRepo) GetStockEntry(ctx context.Context, serverID, vendorID, poochID int64) (*secondary.VendorStockRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	record, ok := m.stock[memKey{serverID, poochID}]
	if !ok || record.VendorID != vendorID {
		return nil, fmt.Errorf("stock entry for pooch %d: %w", poochID, secondary.ErrNotFound)
	}
	copied := *record
	return &copied, nil
}

func (m vendorRepo) ListStock(ctx context.Context, serverID, vendorID int64) ([]*secondary.PoochRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.PoochRecord
	for key, record := range m.stock {
		if key.server == serverID && record.VendorID == vendorID {
			if p, ok := m.pooches[memKey{serverID, record.PoochID}]; ok {
				copied := *p
				out = append(out, &copied)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m vendorRepo) ClearStock(ctx context.Context, serverID, vendorID int64) (int, error) {
	if m.failure != nil {
		return 0, m.failure
	}
	cleared := 0
	for key, record := range m.stock {
		if key.server == serverID && record.VendorID == vendorID {
			delete(m.stock, key)
			delete(m.pooches, memKey{serverID, record.PoochID})
			cleared++
		}
	}
	return cleared, nil
}

func (m vendorRepo) RemoveStockEntry(ctx context.Context, serverID, vendorID, poochID int64) error {
	if m.failure != nil {
		return m.failure
	}
	key := memKey{serverID, poochID}
	record, ok := m.stock[key]
	if !ok || record.VendorID != vendorID {
		return fmt.Errorf("stock entry for pooch %d: %w", poochID, secondary.ErrNotFound)
	}
	delete(m.stock, key)
	return nil
}

// --- GraveyardRepository ---

type graveyardRepo struct{ *memStore }

var _ secondary.GraveyardRepository = graveyardRepo{}

func (m graveyardRepo) Bury(ctx context.Context, entry *secondary.GraveyardRecord) error {
	if m.failure != nil {
		return m.failure
	}
	for _, existing := range m.graves {
		if existing.ServerID == entry.ServerID &&
			existing.OwnerDiscordID == entry.OwnerDiscordID &&
			existing.PoochID == entry.PoochID {
			return secondary.ErrConstraint
		}
	}
	copied := *entry
	m.graves = append(m.graves, &copied)
	return nil
}

func (m graveyardRepo) ListByOwner(ctx context.Context, serverID, ownerDiscordID int64) ([]*secondary.GraveyardRecord, error) {
	if m.failure != nil {
		return nil, m.failure
	}
	var out []*secondary.GraveyardRecord
	for _, entry := range m.graves {
		if entry.ServerID == serverID && entry.OwnerDiscordID == ownerDiscordID {
			copied := *entry
			out = append(out, &copied)
		}
	}
	return out, nil
}

// --- fixture helpers ---

func (m *memStore) addServer(id int64) {
	m.servers[id] = &secondary.ServerRecord{ID: id}
}

func (m *memStore) addOwner(serverID, discordID int64, dollars int64) {
	m.owners[memKey{serverID, discordID}] = &secondary.OwnerRecord{
		ServerID:  serverID,
		DiscordID: discordID,
		Dollars:   dollars,
	}
}

func (m *memStore) addPooch(record *secondary.PoochRecord) int64 {
	record.ID = m.allocID()
	m.pooches[memKey{record.ServerID, record.ID}] = record
	return record.ID
}

// adultFemale builds a healthy adult female owned by the given owner.
func adultFemale(serverID, ownerDiscordID int64) *secondary.PoochRecord {
	owner := ownerDiscordID
	return &secondary.PoochRecord{
		ServerID:       serverID,
		Name:           "Mabel",
		Age:            3,
		Sex:            "female",
		BaseHealth:     10,
		Alive:          true,
		Virgin:         true,
		OwnerDiscordID: &owner,
	}
}

// adultMale builds a healthy adult male owned by the given owner.
func adultMale(serverID, ownerDiscordID int64) *secondary.PoochRecord {
	owner := ownerDiscordID
	return &secondary.PoochRecord{
		ServerID:       serverID,
		Name:           "Gus",
		Age:            4,
		Sex:            "male",
		BaseHealth:     10,
		Alive:          true,
		Virgin:         true,
		OwnerDiscordID: &owner,
	}
}
