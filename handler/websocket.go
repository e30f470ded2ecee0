package handler

import (
	"context"
	"sync"

	"restaurant_pos/constants"
	"restaurant_pos/helper"

	"github.com/gofiber/contrib/websocket"
)

var (
	wsClients = make(map[string]map[*websocket.Conn]bool)
	wsMu      sync.Mutex
)

// WebSocketConnection xử lý WS connection cho màn hình bếp/sảnh.
// Mỗi room là một kênh redis, mọi instance backend đều fan-out được.
func WebSocketConnection(c *websocket.Conn) {
	room := c.Params("room")
	if room == "" {
		room = constants.ROOM_RESTAURANT
	}

	// Khi WS disconnect → xoá client
	defer func() {
		wsMu.Lock()
		if wsClients[room] != nil {
			delete(wsClients[room], c)
		}
		wsMu.Unlock()
		c.Close()
	}()

	// Thêm client mới vào room
	wsMu.Lock()
	if wsClients[room] == nil {
		wsClients[room] = make(map[*websocket.Conn]bool)
	}
	wsClients[room][c] = true
	wsMu.Unlock()

	// Sub kênh Redis của room
	pubsub := helper.RedisClient().Subscribe(context.Background(), room)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		wsMu.Lock()
		for conn := range wsClients[room] {
			// Client lỗi → xoá
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(wsClients[room], conn)
			}
		}
		wsMu.Unlock()
	}
}
