package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"studymates_server/middleware"
	"studymates_server/routes"
	"studymates_server/services"
	"studymates_server/socket"
	"studymates_server/store"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// Select the storage backend
	var dataStore store.Store
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		log.Println("Using in-memory store (demo mode)")
		memStore := store.NewMemoryStore()
		if err := store.SeedDemoProfiles(context.Background(), memStore); err != nil {
			log.Fatalf("Failed to seed demo profiles: %v", err)
		}
		dataStore = memStore
	} else {
		log.Println("Initializing DynamoDB client...")
		dataStore = &store.DynamoStore{Client: store.InitializeDynamoDBClient()}
		log.Println("DynamoDB client initialized.")
	}

	// Initialize Services
	userProfileService := &services.UserProfileService{Store: dataStore}
	swipeService := &services.SwipeService{Store: dataStore}
	matchService := &services.MatchService{Store: dataStore}
	chatService := &services.ChatService{Store: dataStore}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to StudyMates")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Realtime chat events
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer)

	// Register API routes behind the session middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(jwtSecret))
	routes.RegisterUserProfileRoutes(api, userProfileService)
	routes.RegisterActionRoutes(api, swipeService)
	routes.RegisterMatchRoutes(api, matchService)
	routes.RegisterChatRoutes(api, chatService, socketServer)

	// Avatar uploads need a bucket; demo mode runs without one
	if bucket := os.Getenv("S3_BUCKET_NAME"); bucket != "" {
		avatarService := &services.AvatarService{Client: services.InitializeS3Client(), Bucket: bucket}
		routes.RegisterAvatarRoutes(api, avatarService)
	} else {
		log.Println("S3_BUCKET_NAME not set, avatar routes disabled")
	}

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
