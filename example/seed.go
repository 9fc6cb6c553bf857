package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dmitrymomot/tabula/pkg/db"
)

type user struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Website   string    `db:"website"`
	Bio       string    `db:"bio"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

var (
	firstNames = []string{"Ada", "Grace", "Linus", "Margaret", "Ken", "Barbara", "Dennis", "Frances", "Alan", "Radia"}
	lastNames  = []string{"Lovelace", "Hopper", "Torvalds", "Hamilton", "Thompson", "Liskov", "Ritchie", "Allen", "Turing", "Perlman"}
	bios       = []string{
		"Writes **compilers** for fun.",
		"Maintains a [kernel](https://kernel.org).",
		"",
		"Believes in *small* interfaces.",
		"Ships on Fridays.",
	}
)

func seedUsers(ctx context.Context, sqldb *sqlx.DB, n int) (int, error) {
	now := time.Now().UTC().Truncate(time.Second)

	err := db.WithTx(ctx, sqldb, func(tx *sqlx.Tx) error {
		for i := range n {
			first := firstNames[rand.IntN(len(firstNames))]
			last := lastNames[rand.IntN(len(lastNames))]

			u := user{
				ID:        uuid.NewString(),
				Name:      first + " " + last,
				Email:     fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
				Bio:       bios[rand.IntN(len(bios))],
				Active:    rand.IntN(5) != 0,
				CreatedAt: now.Add(-time.Duration(rand.IntN(90*24)) * time.Hour),
			}
			if i%3 == 0 {
				u.Website = "https://" + strings.ToLower(last) + ".dev"
			}

			if _, err := tx.NamedExecContext(ctx, `INSERT INTO users (id, name, email, website, bio, active, created_at)
				VALUES (:id, :name, :email, :website, :bio, :active, :created_at)`, u); err != nil {
				return fmt.Errorf("insert user %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
