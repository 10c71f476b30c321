package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"studymates_server/middleware"
	"studymates_server/services"

	socketio "github.com/googollee/go-socket.io"
)

// ChatController handles HTTP requests for per-match conversations
type ChatController struct {
	ChatService *services.ChatService
	Socket      *socketio.Server
}

// NewChatController initializes the chat controller. The socket server may be
// nil; message sending then skips the realtime broadcast.
func NewChatController(chatService *services.ChatService, socket *socketio.Server) *ChatController {
	return &ChatController{ChatService: chatService, Socket: socket}
}

// HandleGetMessages fetches the messages of a match, oldest first
func (cc *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("matchId")
	if matchID == "" {
		http.Error(w, "matchId is required", http.StatusBadRequest)
		return
	}

	messages, err := cc.ChatService.GetMessages(r.Context(), matchID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// HandleSendMessage appends a message to a match and broadcasts it to the
// match's socket room
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"matchId"`
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("Invalid request payload:", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.MatchID == "" {
		http.Error(w, "matchId is required", http.StatusBadRequest)
		return
	}

	senderID := middleware.GetUserID(r.Context())
	message, err := cc.ChatService.SendMessage(r.Context(), request.MatchID, senderID, request.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if cc.Socket != nil {
		cc.Socket.BroadcastToRoom("/", message.MatchID, "newMessage", message)
	}
	writeJSON(w, http.StatusOK, message)
}

// HandleMarkMessagesAsRead marks the messages the user received in a match as read
func (cc *ChatController) HandleMarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID string `json:"matchId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.MatchID == "" {
		http.Error(w, "matchId is required", http.StatusBadRequest)
		return
	}

	readerID := middleware.GetUserID(r.Context())
	if err := cc.ChatService.MarkMessagesAsRead(r.Context(), request.MatchID, readerID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Messages marked as read"})
}
