// Package postgres owns the database handle and the schema for the service.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// Schema is the full DDL. EnsureSchema applies it idempotently; there is no
// versioned migration chain yet because the schema has had a single shape.
const Schema = `
CREATE TABLE IF NOT EXISTS persons (
	person_id   UUID PRIMARY KEY,
	first_name  VARCHAR(50)  NOT NULL,
	middle_name VARCHAR(50)  NOT NULL DEFAULT '',
	last_name   VARCHAR(50)  NOT NULL,
	title       VARCHAR(50)  NOT NULL DEFAULT '',
	suffix      VARCHAR(50)  NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ  NOT NULL,
	updated_at  TIMESTAMPTZ,
	is_deleted  BOOLEAN      NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS countries (
	country_id          UUID PRIMARY KEY,
	country_code        VARCHAR(10)  NOT NULL UNIQUE,
	name                VARCHAR(100) NOT NULL,
	continent           VARCHAR(100) NOT NULL DEFAULT '',
	capital             VARCHAR(100) NOT NULL DEFAULT '',
	currency_code       VARCHAR(10)  NOT NULL DEFAULT '',
	country_dial_number VARCHAR(10)  NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS person_types (
	person_type_id UUID PRIMARY KEY,
	name           VARCHAR(50) NOT NULL
);

CREATE TABLE IF NOT EXISTS address_types (
	address_type_id UUID PRIMARY KEY,
	name            VARCHAR(50)  NOT NULL,
	description     VARCHAR(200) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS phone_number_types (
	phone_number_type_id UUID PRIMARY KEY,
	name                 VARCHAR(50)  NOT NULL,
	description          VARCHAR(200) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS email_address_types (
	email_address_type_id UUID PRIMARY KEY,
	name                  VARCHAR(50)  NOT NULL,
	description           VARCHAR(200) NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS person_addresses (
	address_id      UUID PRIMARY KEY,
	person_id       UUID NOT NULL REFERENCES persons(person_id),
	address_type_id UUID NOT NULL,
	country_id      UUID NOT NULL,
	address_line_1  VARCHAR(100) NOT NULL,
	address_line_2  VARCHAR(100) NOT NULL DEFAULT '',
	city            VARCHAR(100) NOT NULL,
	postal_code     VARCHAR(20)  NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ  NOT NULL,
	updated_at      TIMESTAMPTZ,
	is_deleted      BOOLEAN      NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_person_addresses_person ON person_addresses(person_id);

CREATE TABLE IF NOT EXISTS person_phone_numbers (
	phone_number_id      UUID PRIMARY KEY,
	person_id            UUID NOT NULL REFERENCES persons(person_id),
	phone_number_type_id UUID NOT NULL,
	country_id           UUID NOT NULL,
	number               VARCHAR(25) NOT NULL,
	created_at           TIMESTAMPTZ NOT NULL,
	updated_at           TIMESTAMPTZ,
	is_deleted           BOOLEAN     NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_person_phone_numbers_person ON person_phone_numbers(person_id);

CREATE TABLE IF NOT EXISTS person_email_addresses (
	email_address_id      UUID PRIMARY KEY,
	person_id             UUID NOT NULL REFERENCES persons(person_id),
	email_address_type_id UUID NOT NULL,
	email                 VARCHAR(100) NOT NULL,
	created_at            TIMESTAMPTZ  NOT NULL,
	updated_at            TIMESTAMPTZ,
	is_deleted            BOOLEAN      NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_person_email_addresses_person ON person_email_addresses(person_id);
CREATE INDEX IF NOT EXISTS idx_person_email_addresses_email ON person_email_addresses(email);

CREATE TABLE IF NOT EXISTS person_governmental_infos (
	governmental_info_id UUID PRIMARY KEY,
	person_id            UUID NOT NULL REFERENCES persons(person_id),
	country_id           UUID NOT NULL,
	gov_id_number        VARCHAR(50) NOT NULL DEFAULT '',
	passport_number      VARCHAR(50) NOT NULL DEFAULT '',
	created_at           TIMESTAMPTZ NOT NULL,
	updated_at           TIMESTAMPTZ,
	is_deleted           BOOLEAN     NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_person_governmental_infos_person ON person_governmental_infos(person_id);

CREATE TABLE IF NOT EXISTS person_birth_details (
	birth_details_id UUID PRIMARY KEY,
	person_id        UUID NOT NULL UNIQUE REFERENCES persons(person_id),
	country_id       UUID NOT NULL,
	birth_date       TIMESTAMPTZ  NOT NULL,
	birth_city       VARCHAR(100) NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ  NOT NULL,
	updated_at       TIMESTAMPTZ,
	is_deleted       BOOLEAN      NOT NULL DEFAULT FALSE
);
`

// EnsureSchema creates all tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
