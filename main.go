package main

import (
	"log"
	"net/http"

	"agencybuilder/coach/config"
	"agencybuilder/coach/handlers"
	"agencybuilder/coach/llm"
	"agencybuilder/coach/middleware"
	"agencybuilder/coach/routes"
	"agencybuilder/coach/store"
)

func main() {

	config.InitLogger()
	config.LoadEnv()
	store.Init()

	h := handlers.New(store.Client, llm.NewGeminiCoach())

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, h)

	wrapped := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	port := config.Getenv("PORT", "8080")
	log.Println("Server is running on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, wrapped))
}
