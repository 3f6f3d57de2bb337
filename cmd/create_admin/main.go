package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"kaloltsavam-backend/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Creates an admin account, or promotes an existing account to admin.
func main() {
	if os.Getenv("RENDER") == "" {
		_ = godotenv.Load()
	}

	var (
		email    = flag.String("email", "", "Admin email address")
		password = flag.String("password", "", "Admin password (required when the account does not exist yet)")
	)
	flag.Parse()

	addr := strings.TrimSpace(*email)
	if addr == "" {
		log.Fatal("--email is required")
	}

	database.ConnectDB()
	if err := database.CreateSchema(database.DB); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	var exists bool
	if err := database.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, addr).Scan(&exists); err != nil {
		log.Fatalf("look up user: %v", err)
	}

	if exists {
		if _, err := database.DB.Exec(`UPDATE users SET is_admin = TRUE, verified = TRUE WHERE email = $1`, addr); err != nil {
			log.Fatalf("promote user: %v", err)
		}
		log.Printf("%s promoted to admin", addr)
		return
	}

	if *password == "" {
		log.Fatal("--password is required for a new account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 14)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	if _, err := database.DB.Exec(`
		INSERT INTO users (email, password_hash, is_admin, verified)
		VALUES ($1, $2, TRUE, TRUE)
	`, addr, string(hash)); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	log.Printf("admin account created for %s", addr)
}
