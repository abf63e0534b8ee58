package main

import (
	"flag"
	"log"

	"pewec-api/config"
	"pewec-api/internal/auth"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seeds a back-office account. Run once per admin:
//
//	go run ./cmd/create_admin -email admin@pewec.com -password <pass> -name "Office Admin"
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	_ = godotenv.Load()

	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&auth.AdminUser{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	s := &auth.AuthService{DB: db}
	user, err := s.CreateAdmin(*email, *password, *name)
	if err != nil {
		log.Fatal("Failed to create admin: ", err)
	}

	log.Printf("Admin created: %s (%s)", user.Email, user.ID)
}
