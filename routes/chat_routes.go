package routes

import (
	"studymates_server/controllers"
	"studymates_server/services"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for conversation operations under /chat
func RegisterChatRoutes(api *mux.Router, chatService *services.ChatService, socket *socketio.Server) {
	controller := controllers.NewChatController(chatService, socket)

	chatRouter := api.PathPrefix("/chat").Subrouter()
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/messages", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/markRead", controller.HandleMarkMessagesAsRead).Methods("POST")
}
