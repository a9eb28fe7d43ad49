package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-porter/internal/entities"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/token"
)

const tokenIDsKey = "token:ids"

func main() {
	redisURL := os.Getenv("PORTER_REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Checking the token index...")

	ids, err := client.SMembers(ctx, tokenIDsKey).Result()
	if err != nil {
		log.Fatal("Failed to read token index:", err)
	}

	var broken []string
	for _, id := range ids {
		data, err := client.Get(ctx, token.Key(id)).Result()
		if err == redis.Nil {
			fmt.Printf("✗ %s is indexed but has no data\n", id)
			broken = append(broken, id)
			continue
		}
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", id, err)
			continue
		}

		var t entities.Token
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", token.Key(id))
			broken = append(broken, id)
			continue
		}
		if t.ID != id {
			fmt.Printf("✗ %s stores token %q\n", token.Key(id), t.ID)
			broken = append(broken, id)
		}
	}

	fmt.Printf("\nChecked %d tokens, found %d broken entries\n", len(ids), len(broken))

	if len(broken) == 0 {
		fmt.Println("Token index is consistent!")
		return
	}

	fmt.Print("\nDo you want to REMOVE these tokens from the index and delete their data? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, id := range broken {
		_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.SRem(ctx, tokenIDsKey, id)
			pipe.Del(ctx, token.Key(id))
			return nil
		})
		if err != nil {
			fmt.Printf("Failed to remove %s: %v\n", id, err)
		} else {
			fmt.Printf("Removed %s\n", id)
		}
	}
	fmt.Println("\nCleanup complete!")
}
