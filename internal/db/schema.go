package db

// SchemaSQL is the complete SQLite schema for fresh poochyard installs.
//
// This is the single source of truth for the SQLite layout. Repository
// tests load it via GetSchemaSQL() so a column referenced by adapter code
// but missing here fails immediately with "no such column" instead of
// drifting silently.
//
// Deletes cascade nowhere: child rows (kennel memberships, stock rows,
// parentage) are removed by explicit ordered deletes in the adapters,
// children before parents.
const SchemaSQL = `
-- Servers (tenant boundary; every other table carries server_id)
CREATE TABLE IF NOT EXISTS servers (
	id INTEGER PRIMARY KEY,
	event_channel_id INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Owners (players, created lazily on first interaction)
CREATE TABLE IF NOT EXISTS owners (
	server_id INTEGER NOT NULL REFERENCES servers(id),
	discord_id INTEGER NOT NULL,
	dollars INTEGER NOT NULL DEFAULT 100,
	bloodskulls INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (server_id, discord_id)
);

-- Kennels (capacity-limited containers owned by one player)
CREATE TABLE IF NOT EXISTS kennels (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	server_id INTEGER NOT NULL REFERENCES servers(id),
	owner_discord_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	pooch_limit INTEGER NOT NULL DEFAULT 10,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (server_id, owner_discord_id) REFERENCES owners(server_id, discord_id)
);

-- Vendors (non-player sellers; desired mutations are schema-only)
CREATE TABLE IF NOT EXISTS vendors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	server_id INTEGER NOT NULL REFERENCES servers(id),
	name TEXT NOT NULL,
	desired_mutation_1 TEXT,
	desired_mutation_2 TEXT,
	desired_mutation_3 TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Pooches (age -1 = fetal; owner and vendor are mutually exclusive)
CREATE TABLE IF NOT EXISTS pooches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	server_id INTEGER NOT NULL REFERENCES servers(id),
	name TEXT NOT NULL,
	age INTEGER NOT NULL DEFAULT -1 CHECK(age >= -1),
	sex TEXT NOT NULL CHECK(sex IN ('male', 'female')),
	base_health INTEGER NOT NULL DEFAULT 10 CHECK(base_health >= 0),
	health_loss_age INTEGER NOT NULL DEFAULT 0 CHECK(health_loss_age >= 0),
	breeding_cooldown INTEGER NOT NULL DEFAULT 2 CHECK(breeding_cooldown >= 0),
	alive INTEGER NOT NULL DEFAULT 1,
	virgin INTEGER NOT NULL DEFAULT 1,
	owner_discord_id INTEGER,
	vendor_id INTEGER REFERENCES vendors(id),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	CHECK(owner_discord_id IS NULL OR vendor_id IS NULL),
	FOREIGN KEY (server_id, owner_discord_id) REFERENCES owners(server_id, discord_id)
);

-- Parentage (one row per child; either parent may be unknown)
CREATE TABLE IF NOT EXISTS pooch_parentage (
	server_id INTEGER NOT NULL REFERENCES servers(id),
	child_id INTEGER NOT NULL REFERENCES pooches(id),
	father_id INTEGER REFERENCES pooches(id),
	mother_id INTEGER REFERENCES pooches(id),
	PRIMARY KEY (server_id, child_id)
);

-- Pregnancies (pending births; a fetus appears at most once per server)
CREATE TABLE IF NOT EXISTS pooch_pregnancies (
	server_id INTEGER NOT NULL REFERENCES servers(id),
	mother_id INTEGER NOT NULL REFERENCES pooches(id),
	fetus_id INTEGER NOT NULL REFERENCES pooches(id),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (server_id, fetus_id)
);

-- Kennel membership (a pooch lives in at most one kennel)
CREATE TABLE IF NOT EXISTS kennel_pooches (
	server_id INTEGER NOT NULL REFERENCES servers(id),
	kennel_id INTEGER NOT NULL REFERENCES kennels(id),
	pooch_id INTEGER NOT NULL REFERENCES pooches(id),
	PRIMARY KEY (server_id, pooch_id)
);

-- Vendor stock (a pooch is offered by at most one vendor)
CREATE TABLE IF NOT EXISTS vendor_stock (
	server_id INTEGER NOT NULL REFERENCES servers(id),
	vendor_id INTEGER NOT NULL REFERENCES vendors(id),
	pooch_id INTEGER NOT NULL REFERENCES pooches(id),
	price INTEGER NOT NULL,
	PRIMARY KEY (server_id, pooch_id)
);

-- Graveyard (historical record of deceased, formerly-owned pooches)
CREATE TABLE IF NOT EXISTS graveyard (
	server_id INTEGER NOT NULL REFERENCES servers(id),
	owner_discord_id INTEGER NOT NULL,
	pooch_id INTEGER NOT NULL REFERENCES pooches(id),
	buried_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (server_id, owner_discord_id, pooch_id)
);

CREATE INDEX IF NOT EXISTS idx_pooches_server_owner ON pooches(server_id, owner_discord_id);
CREATE INDEX IF NOT EXISTS idx_pooches_alive ON pooches(alive, age);
CREATE INDEX IF NOT EXISTS idx_parentage_father ON pooch_parentage(server_id, father_id);
CREATE INDEX IF NOT EXISTS idx_parentage_mother ON pooch_parentage(server_id, mother_id);
CREATE INDEX IF NOT EXISTS idx_pregnancies_mother ON pooch_pregnancies(server_id, mother_id);
CREATE INDEX IF NOT EXISTS idx_kennel_pooches_kennel ON kennel_pooches(server_id, kennel_id);
CREATE INDEX IF NOT EXISTS idx_vendor_stock_vendor ON vendor_stock(server_id, vendor_id);
`

// GetSchemaSQL returns the authoritative SQLite schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
