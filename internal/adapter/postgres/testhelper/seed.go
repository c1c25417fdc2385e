package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/linkbook/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	u := domain.User{
		Email:        "user-" + suffix + "@example.com",
		Username:     "user-" + suffix,
		PasswordHash: "$2a$04$seeded.hash.not.checked.by.tests",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, username, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.Email, u.Username, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedLink inserts a link owned by userID.
func SeedLink(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Link {
	t.Helper()

	suffix := uniqueSuffix()
	l := domain.Link{
		UserID: userID,
		URL:    "https://example.com/" + suffix,
		Title:  "Link " + suffix,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO links (user_id, url, title)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		l.UserID, l.URL, l.Title,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLink: %v", err)
	}

	return l
}

// SeedBook inserts a book owned by userID with the given title.
func SeedBook(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.Book {
	t.Helper()

	b := domain.Book{UserID: userID, Title: title}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO books (user_id, title)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		b.UserID, b.Title,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBook: %v", err)
	}

	return b
}
