package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		avatar_url VARCHAR(500),
		provider VARCHAR(50) NOT NULL,
		provider_id VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(provider, provider_id)
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS matches (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		channel_id VARCHAR(64) NOT NULL UNIQUE,
		message_id VARCHAR(64),
		team1_id UUID NOT NULL,
		team2_id UUID NOT NULL,
		subtitle VARCHAR(255),
		start_time TIMESTAMP WITH TIME ZONE,
		score VARCHAR(64),
		max_num_offers INTEGER NOT NULL DEFAULT 12,
		coin_flip BOOLEAN NOT NULL,
		advantage_choice BOOLEAN,
		sides_flipped BOOLEAN,
		stream_delay INTEGER NOT NULL DEFAULT 15,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS offers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		match_id UUID NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
		offer_no INTEGER NOT NULL,
		team_id UUID NOT NULL,
		map VARCHAR(64) NOT NULL,
		environment VARCHAR(32) NOT NULL,
		layout CHAR(3) NOT NULL,
		accepted BOOLEAN,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(match_id, offer_no)
	)`,

	`CREATE TABLE IF NOT EXISTS casters (
		user_id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		channel_url VARCHAR(500) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS streams (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		match_id UUID NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
		caster_id UUID NOT NULL REFERENCES casters(user_id) ON DELETE CASCADE,
		lang VARCHAR(8) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(match_id, caster_id)
	)`,

	`CREATE TABLE IF NOT EXISTS predictions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		match_id UUID NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
		user_id UUID NOT NULL,
		team1_score INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(match_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS polls (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		question VARCHAR(500) NOT NULL,
		closed BOOLEAN NOT NULL DEFAULT FALSE,
		created_by UUID,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS poll_options (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		poll_id UUID NOT NULL REFERENCES polls(id) ON DELETE CASCADE,
		option VARCHAR(255) NOT NULL,
		position INTEGER NOT NULL,
		UNIQUE(poll_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS poll_votes (
		poll_id UUID NOT NULL REFERENCES polls(id) ON DELETE CASCADE,
		team_id UUID NOT NULL,
		option_id UUID NOT NULL REFERENCES poll_options(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		PRIMARY KEY(poll_id, team_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_offers_match_id ON offers(match_id)`,
	`CREATE INDEX IF NOT EXISTS idx_streams_match_id ON streams(match_id)`,
	`CREATE INDEX IF NOT EXISTS idx_predictions_match_id ON predictions(match_id)`,
	`CREATE INDEX IF NOT EXISTS idx_poll_options_poll_id ON poll_options(poll_id)`,
	`CREATE INDEX IF NOT EXISTS idx_poll_votes_option_id ON poll_votes(option_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
