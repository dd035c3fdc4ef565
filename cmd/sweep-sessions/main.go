// Command sweep-sessions abandons review sessions that have been idle
// past the given window. The server runs the same sweep on a schedule;
// this command exists for cron setups and manual cleanup.
//
// Usage:
//
//	sweep-sessions [--idle-window 2h]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	idleWindow := flag.Duration("idle-window", 2*time.Hour, "abandon ACTIVE sessions with no activity for this long")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tag, err := pool.Exec(ctx,
		"UPDATE study_sessions SET status = 'ABANDONED', finished_at = now() WHERE status = 'ACTIVE' AND last_activity_at < $1",
		time.Now().Add(-*idleWindow),
	)
	if err != nil {
		log.Fatalf("sweep sessions: %v", err)
	}

	fmt.Printf("Abandoned %d stale sessions.\n", tag.RowsAffected())
}
