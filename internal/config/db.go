package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// ConnectDB establishes a connection pool to the PostgreSQL database,
// retrying while the server comes up.
func ConnectDB(ctx context.Context, cfg DBConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(ctx, cfg.DSN())
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				log.Info().Str("host", cfg.Host).Str("db", cfg.Name).Msg("connected to PostgreSQL")
				return pool, nil
			}
			pool.Close()
		}
		log.Warn().Err(err).
			Int("attempt", i+1).
			Int("max_attempts", maxRetries).
			Dur("retry_in", cfg.RetryInterval).
			Msg("failed to connect to database")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// Execer is the part of the pool AutoMigrate needs.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ers_user_roles (
	role_id   SERIAL PRIMARY KEY,
	role_name VARCHAR(50) UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS ers_users (
	ers_user_id  SERIAL PRIMARY KEY,
	username     VARCHAR(50) UNIQUE NOT NULL,
	password     TEXT NOT NULL,
	first_name   VARCHAR(100) NOT NULL,
	last_name    VARCHAR(100) NOT NULL,
	email        VARCHAR(150) UNIQUE NOT NULL,
	user_role_id INT NOT NULL REFERENCES ers_user_roles(role_id)
);

CREATE TABLE IF NOT EXISTS ers_reimbursement_statuses (
	reimb_status_id SERIAL PRIMARY KEY,
	reimb_status    VARCHAR(20) UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS ers_reimbursement_types (
	reimb_type_id SERIAL PRIMARY KEY,
	reimb_type    VARCHAR(20) UNIQUE NOT NULL
);

CREATE TABLE IF NOT EXISTS ers_reimbursements (
	reimb_id        SERIAL PRIMARY KEY,
	amount          NUMERIC(12, 2) NOT NULL CHECK (amount > 0),
	submitted       TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
	resolved        TIMESTAMP WITH TIME ZONE,
	description     TEXT NOT NULL,
	author_id       INT NOT NULL REFERENCES ers_users(ers_user_id) ON DELETE RESTRICT,
	resolver_id     INT REFERENCES ers_users(ers_user_id) ON DELETE RESTRICT,
	reimb_status_id INT NOT NULL REFERENCES ers_reimbursement_statuses(reimb_status_id),
	reimb_type_id   INT NOT NULL REFERENCES ers_reimbursement_types(reimb_type_id)
);

CREATE INDEX IF NOT EXISTS idx_reimbursements_author_id ON ers_reimbursements(author_id);
CREATE INDEX IF NOT EXISTS idx_reimbursements_status_id ON ers_reimbursements(reimb_status_id);
`

const seedSQL = `
INSERT INTO ers_user_roles (role_name) VALUES ('admin'), ('finance manager'), ('user')
	ON CONFLICT (role_name) DO NOTHING;
INSERT INTO ers_reimbursement_statuses (reimb_status) VALUES ('Pending'), ('Approved'), ('Denied')
	ON CONFLICT (reimb_status) DO NOTHING;
INSERT INTO ers_reimbursement_types (reimb_type) VALUES ('LODGING'), ('TRAVEL'), ('FOOD'), ('OTHER')
	ON CONFLICT (reimb_type) DO NOTHING;
`

// AutoMigrate creates tables if they don't exist and seeds the lookup tables.
func AutoMigrate(ctx context.Context, db Execer, log zerolog.Logger) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	if _, err := db.Exec(ctx, seedSQL); err != nil {
		return fmt.Errorf("unable to seed lookup tables: %w", err)
	}

	log.Info().Msg("AutoMigrate applied successfully")
	return nil
}
