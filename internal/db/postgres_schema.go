package db

// PostgresSchemaSQL mirrors SchemaSQL for the Postgres backend. Kept in
// lockstep with the SQLite layout: same tables, same columns, same
// constraints. Differences are limited to identity columns and type
// names.
const PostgresSchemaSQL = `
CREATE TABLE IF NOT EXISTS servers (
	id BIGINT PRIMARY KEY,
	event_channel_id BIGINT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS owners (
	server_id BIGINT NOT NULL REFERENCES servers(id),
	discord_id BIGINT NOT NULL,
	dollars BIGINT NOT NULL DEFAULT 100,
	bloodskulls BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (server_id, discord_id)
);

CREATE TABLE IF NOT EXISTS kennels (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	server_id BIGINT NOT NULL REFERENCES servers(id),
	owner_discord_id BIGINT NOT NULL,
	name TEXT NOT NULL,
	pooch_limit INTEGER NOT NULL DEFAULT 10,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	FOREIGN KEY (server_id, owner_discord_id) REFERENCES owners(server_id, discord_id)
);

CREATE TABLE IF NOT EXISTS vendors (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	server_id BIGINT NOT NULL REFERENCES servers(id),
	name TEXT NOT NULL,
	desired_mutation_1 TEXT,
	desired_mutation_2 TEXT,
	desired_mutation_3 TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS pooches (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	server_id BIGINT NOT NULL REFERENCES servers(id),
	name TEXT NOT NULL,
	age INTEGER NOT NULL DEFAULT -1 CHECK(age >= -1),
	sex TEXT NOT NULL CHECK(sex IN ('male', 'female')),
	base_health INTEGER NOT NULL DEFAULT 10 CHECK(base_health >= 0),
	health_loss_age INTEGER NOT NULL DEFAULT 0 CHECK(health_loss_age >= 0),
	breeding_cooldown INTEGER NOT NULL DEFAULT 2 CHECK(breeding_cooldown >= 0),
	alive BOOLEAN NOT NULL DEFAULT TRUE,
	virgin BOOLEAN NOT NULL DEFAULT TRUE,
	owner_discord_id BIGINT,
	vendor_id BIGINT REFERENCES vendors(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CHECK(owner_discord_id IS NULL OR vendor_id IS NULL),
	FOREIGN KEY (server_id, owner_discord_id) REFERENCES owners(server_id, discord_id)
);

CREATE TABLE IF NOT EXISTS pooch_parentage (
	server_id BIGINT NOT NULL REFERENCES servers(id),
	child_id BIGINT NOT NULL REFERENCES pooches(id),
	father_id BIGINT REFERENCES pooches(id),
	mother_id BIGINT REFERENCES pooches(id),
	PRIMARY KEY (server_id, child_id)
);

CREATE TABLE IF NOT EXISTS pooch_pregnancies (
	server_id BIGINT NOT NULL REFERENCES servers(id),
	mother_id BIGINT NOT NULL REFERENCES pooches(id),
	fetus_id BIGINT NOT NULL REFERENCES pooches(id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (server_id, fetus_id)
);

CREATE TABLE IF NOT EXISTS kennel_pooches (
	server_id BIGINT NOT NULL REFERENCES servers(id),
	kennel_id BIGINT NOT NULL REFERENCES kennels(id),
	pooch_id BIGINT NOT NULL REFERENCES pooches(id),
	PRIMARY KEY (server_id, pooch_id)
);

CREATE TABLE IF NOT EXISTS vendor_stock (
	server_id BIGINT NOT NULL REFERENCES servers(id),
	vendor_id BIGINT NOT NULL REFERENCES vendors(id),
	pooch_id BIGINT NOT NULL REFERENCES pooches(id),
	price INTEGER NOT NULL,
	PRIMARY KEY (server_id, pooch_id)
);

CREATE TABLE IF NOT EXISTS graveyard (
	server_id BIGINT NOT NULL REFERENCES servers(id),
	owner_discord_id BIGINT NOT NULL,
	pooch_id BIGINT NOT NULL REFERENCES pooches(id),
	buried_at TIMESTAMPTZ NOT NULL DEFAULT now(),
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
