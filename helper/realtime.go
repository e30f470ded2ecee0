package helper

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"restaurant_pos/config"
	"restaurant_pos/constants"

	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

func RedisClient() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

type RealtimeEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Broadcast đẩy event lên kênh redis của room, hub websocket sẽ fan-out cho
// mọi client đang kết nối. Fire-and-forget: lỗi chỉ log, không bao giờ trả
// về cho caller nên không ảnh hưởng transaction đã commit.
func Broadcast(event string, payload any, room string) {
	if room == "" {
		room = constants.ROOM_RESTAURANT
	}

	message, err := json.Marshal(RealtimeEvent{Event: event, Data: payload})
	if err != nil {
		log.Printf("Broadcast marshal failed for %s: %v", event, err)
		return
	}

	if err := RedisClient().Publish(context.Background(), room, message).Err(); err != nil {
		log.Printf("Broadcast publish failed for %s: %v", event, err)
	}
}
