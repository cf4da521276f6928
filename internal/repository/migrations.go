package repository

import "fmt"

// Migrate creates the schema and tables if they do not exist yet
func (r *Repository) Migrate() error {
	schema := `
	CREATE SCHEMA IF NOT EXISTS finance;

	CREATE TABLE IF NOT EXISTS finance.users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS finance.cards (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES finance.users(id),
		name TEXT NOT NULL,
		last_four_digits TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		credit_limit NUMERIC(14,2) NOT NULL DEFAULT 0,
		closing_day INT NOT NULL,
		due_day INT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS finance.transactions (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES finance.users(id),
		card_id BIGINT REFERENCES finance.cards(id),
		description TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		installments INT NOT NULL DEFAULT 1,
		current_installment INT NOT NULL DEFAULT 1,
		is_recurring BOOLEAN NOT NULL DEFAULT FALSE,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON finance.transactions(user_id, date);
	CREATE INDEX IF NOT EXISTS idx_transactions_category ON finance.transactions(category);

	CREATE TABLE IF NOT EXISTS finance.incomes (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES finance.users(id),
		description TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL,
		received_date TIMESTAMPTZ NOT NULL,
		is_recurring BOOLEAN NOT NULL DEFAULT FALSE,
		category TEXT NOT NULL DEFAULT 'salary',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_incomes_user_received ON finance.incomes(user_id, received_date);

	CREATE TABLE IF NOT EXISTS finance.loans (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES finance.users(id),
		description TEXT NOT NULL,
		total_amount NUMERIC(14,2) NOT NULL,
		remaining_amount NUMERIC(14,2) NOT NULL,
		interest_rate NUMERIC(8,4) NOT NULL DEFAULT 0,
		installments INT NOT NULL,
		paid_installments INT NOT NULL DEFAULT 0,
		due_day INT NOT NULL,
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_loans_user_status ON finance.loans(user_id, status);

	CREATE TABLE IF NOT EXISTS finance.financings (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES finance.users(id),
		description TEXT NOT NULL,
		total_amount NUMERIC(14,2) NOT NULL,
		down_payment NUMERIC(14,2) NOT NULL DEFAULT 0,
		remaining_amount NUMERIC(14,2) NOT NULL,
		interest_rate NUMERIC(8,4) NOT NULL DEFAULT 0,
		installments INT NOT NULL,
		paid_installments INT NOT NULL DEFAULT 0,
		monthly_payment NUMERIC(14,2) NOT NULL,
		due_day INT NOT NULL,
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		type TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_financings_user_status ON finance.financings(user_id, status);

	CREATE TABLE IF NOT EXISTS finance.insights (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES finance.users(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		type TEXT NOT NULL,
		priority INT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		metadata JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_insights_user_priority ON finance.insights(user_id, priority DESC, created_at DESC);
	`

	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
