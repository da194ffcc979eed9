package infra

import (
	"log"

	"github.com/redis/go-redis/v9"
)

func InitRedis(addr string, password string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	log.Printf("Connecting to Redis at %s", addr)
	return client
}
