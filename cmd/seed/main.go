// Seed tool: fills a migrated database with demo users, follow edges, posts
// and likes using batched inserts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"igclone/pkg/config"
	"igclone/pkg/database"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "password123"

var names = []string{"alice", "bob", "charlie", "diana", "eve", "frank", "grace", "heidi"}

func main() {
	var numPosts int
	var batchSize int
	var followRate float64
	flag.IntVar(&numPosts, "posts", 5, "posts per user")
	flag.IntVar(&batchSize, "batch", 500, "insert batch size")
	flag.Float64Var(&followRate, "follow-rate", 0.5, "probability that one user follows another")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, database.PostgresDSN(cfg))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now()

	userIDs, err := seedUsers(ctx, pool)
	if err != nil {
		log.Fatalf("%s %v", color.RedString("seed users failed:"), err)
	}
	info("users: %d", len(userIDs))

	follows, err := seedFollows(ctx, pool, r, userIDs, followRate, batchSize)
	if err != nil {
		log.Fatalf("%s %v", color.RedString("seed follows failed:"), err)
	}
	info("follows: %d", follows)

	postIDs, err := seedPosts(ctx, pool, r, userIDs, numPosts)
	if err != nil {
		log.Fatalf("%s %v", color.RedString("seed posts failed:"), err)
	}
	info("posts: %d", len(postIDs))

	likes, err := seedLikes(ctx, pool, r, userIDs, postIDs, batchSize)
	if err != nil {
		log.Fatalf("%s %v", color.RedString("seed likes failed:"), err)
	}
	info("likes: %d", likes)

	fmt.Println(color.GreenString("done in %s (password for every user: %s)", time.Since(start).Truncate(time.Millisecond), seedPassword))
}

func info(format string, args ...interface{}) {
	fmt.Println(color.CyanString("[SEED] ") + fmt.Sprintf(format, args...))
}

// seedUsers upserts the demo accounts and returns their ids.
func seedUsers(ctx context.Context, pool *pgxpool.Pool) ([]int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		var id int64
		err := pool.QueryRow(ctx,
			`INSERT INTO users (name, email, password, created_at, updated_at)
			 VALUES ($1, $2, $3, now(), now())
			 ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`,
			name, name+"@example.com", string(hash),
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert user %s: %w", name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedFollows(ctx context.Context, pool *pgxpool.Pool, r *rand.Rand, userIDs []int64, rate float64, batchSize int) (int, error) {
	b := newBatcher(ctx, pool, batchSize)
	for _, follower := range userIDs {
		for _, following := range userIDs {
			if follower == following || r.Float64() >= rate {
				continue
			}
			if err := b.queue(
				`INSERT INTO follows (follower_id, following_id, created_at) VALUES ($1, $2, now())
				 ON CONFLICT ON CONSTRAINT unique_follow DO NOTHING`,
				follower, following,
			); err != nil {
				return 0, err
			}
		}
	}
	return b.total, b.flush()
}

func seedPosts(ctx context.Context, pool *pgxpool.Pool, r *rand.Rand, userIDs []int64, perUser int) ([]int64, error) {
	now := time.Now()
	monthAgo := now.Add(-30 * 24 * time.Hour)

	ids := make([]int64, 0, len(userIDs)*perUser)
	for _, userID := range userIDs {
		for i := 0; i < perUser; i++ {
			createdAt := monthAgo.Add(time.Duration(r.Int63n(int64(now.Sub(monthAgo)))))
			var id int64
			err := pool.QueryRow(ctx,
				`INSERT INTO posts (user_id, content, created_at, updated_at) VALUES ($1, $2, $3, $3) RETURNING id`,
				userID, fmt.Sprintf("Post #%d from user %d", i+1, userID), createdAt,
			).Scan(&id)
			if err != nil {
				return nil, fmt.Errorf("insert post: %w", err)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func seedLikes(ctx context.Context, pool *pgxpool.Pool, r *rand.Rand, userIDs, postIDs []int64, batchSize int) (int, error) {
	b := newBatcher(ctx, pool, batchSize)
	for _, postID := range postIDs {
		for _, userID := range userIDs {
			if r.Intn(3) != 0 {
				continue
			}
			if err := b.queue(
				`INSERT INTO likes (user_id, post_id, created_at) VALUES ($1, $2, now())
				 ON CONFLICT ON CONSTRAINT unique_like DO NOTHING`,
				userID, postID,
			); err != nil {
				return 0, err
			}
		}
	}
	return b.total, b.flush()
}

// batcher groups statements into one pgx.Batch round-trip per size statements.
type batcher struct {
	ctx     context.Context
	pool    *pgxpool.Pool
	size    int
	batch   *pgx.Batch
	pending int
	total   int
}

func newBatcher(ctx context.Context, pool *pgxpool.Pool, size int) *batcher {
	if size < 1 {
		size = 1
	}
	return &batcher{ctx: ctx, pool: pool, size: size, batch: &pgx.Batch{}}
}

func (b *batcher) queue(sql string, args ...interface{}) error {
	b.batch.Queue(sql, args...)
	b.pending++
	b.total++
	if b.pending >= b.size {
		return b.flush()
	}
	return nil
}

func (b *batcher) flush() error {
	if b.pending == 0 {
		return nil
	}
	br := b.pool.SendBatch(b.ctx, b.batch)
	for i := 0; i < b.pending; i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("batch exec: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("batch close: %w", err)
	}
	b.batch = &pgx.Batch{}
	b.pending = 0
	return nil
}
