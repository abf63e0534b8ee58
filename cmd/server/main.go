package main

import (
	"log"
	"os"

	"pewec-api/config"
	"pewec-api/internal/admin"
	"pewec-api/internal/auth"
	"pewec-api/internal/course"
	"pewec-api/internal/enquiry"
	"pewec-api/internal/logs"
	"pewec-api/internal/mailer"
	"pewec-api/internal/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
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

	if err := db.AutoMigrate(
		&enquiry.Contact{},
		&enquiry.Enquiry{},
		&course.Course{},
		&auth.AdminUser{},
		&logs.SystemLog{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://pewec.com", "https://www.pewec.com"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Use(middlewares.AdminGate(auth.Authenticated))

	logService := &logs.LogService{DB: db}

	authService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, authService, logService)

	courseService := &course.CourseService{DB: db}
	course.RegisterRoutes(r, courseService, logService)

	enquiryService := &enquiry.EnquiryService{DB: db}
	mail := &mailer.Mailer{CFG: cfg}
	enquiry.RegisterRoutes(r, enquiryService, courseService, mail, logService)

	logs.RegisterRoutes(r, logService)

	adminService := &admin.AdminService{DB: db}
	admin.RegisterRoutes(r, adminService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
