package main

import (
	"fmt"
	"log"

	"beltdash/backend/internal/config"
	"beltdash/backend/internal/database"
	"beltdash/backend/internal/handler"
	jwtpkg "beltdash/backend/pkg/jwt"

	// Swagger imports
	_ "beltdash/backend/docs" // This is important for swag to find the generated docs
)

func init() {
	config.LoadConfig()
}

// @title           BeltDash API
// @version         1.0
// @description     This is the API for the BeltDash game backend.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database, migrate and seed
	database.Connect(config.AppConfig.DatabaseURL)

	tokens := jwtpkg.NewIssuer(
		config.AppConfig.JWTKey,
		config.AppConfig.JWTIssuer,
		config.AppConfig.JWTAudience,
	)

	router := handler.NewRouter(database.DB, tokens)

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddress)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddress))
}
