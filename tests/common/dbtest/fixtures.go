//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password", precomputed so fixtures skip hashing.
const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func CreateTestUser(t *testing.T, db *pgxpool.Pool, email, role string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (id, email, username, password_hash, role, is_active, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, TRUE, now())
		RETURNING id
	`, email, "tester", testPasswordHash, role).Scan(&id)
	require.NoError(t, err, "failed to create test user")
	return id
}

func CreateTestProduct(t *testing.T, db *pgxpool.Pool, name, brand string, goalLikes int32) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO products (id, name, brand, image_url, goal_likes, created_at)
		VALUES (gen_random_uuid(), $1, $2, '', $3, now())
		RETURNING id
	`, name, brand, goalLikes).Scan(&id)
	require.NoError(t, err, "failed to create test product")
	return id
}

// ResetDB truncates all tables so each subtest starts from a clean slate.
func ResetDB(db *pgxpool.Pool) error {
	_, err := db.Exec(context.Background(),
		`TRUNCATE votes, submissions, products, users RESTART IDENTITY CASCADE`)
	return err
}
