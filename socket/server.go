package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server. Clients join the room
// named after their match id and receive "newMessage" events for it.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			log.Println("❌ Invalid matchId in join request")
			return
		}
		log.Printf("👥 Socket %s joined match %s\n", c.ID(), matchID)
		c.Join(matchID)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, matchID string) {
		c.Leave(matchID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", reason)
	})

	return server
}
