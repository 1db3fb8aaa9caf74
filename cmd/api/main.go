package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/citycare/mydoctor-api/internal/config"
	"github.com/citycare/mydoctor-api/internal/database"
	"github.com/citycare/mydoctor-api/internal/handlers"
	"github.com/citycare/mydoctor-api/internal/jobs"
	"github.com/citycare/mydoctor-api/internal/middleware"
	"github.com/citycare/mydoctor-api/internal/models"
	"github.com/citycare/mydoctor-api/internal/services"
	"github.com/citycare/mydoctor-api/internal/session"
	"github.com/citycare/mydoctor-api/internal/stores"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is NOT SET; API bearer tokens will not be issued.")
	}

	// --- Database ---
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Seed(db, cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Successfully connected to Postgres!")

	// --- Stores ---
	users := &stores.GormUserStore{DB: db}
	doctors := &stores.GormDoctorStore{DB: db}
	patients := &stores.GormPatientStore{DB: db}
	appointments := &stores.GormAppointmentStore{DB: db}
	records := &stores.GormMedicalRecordStore{DB: db}

	// --- Services & Handlers ---
	notificationSvc := services.NewNotificationService(cfg.TextbeltKey)
	sessions := session.NewManager(session.Config{
		TTL:    cfg.SessionTTL,
		Secure: cfg.Production(),
	})
	h := handlers.NewHandler(users, doctors, patients, appointments, records,
		sessions, notificationSvc, []byte(cfg.JWTSecret))

	// --- Background jobs ---
	scheduler := jobs.StartDailyScheduler(appointments)
	defer scheduler.Stop()

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// The route gate runs before every page render.
	r.Use(middleware.RouteGate())

	// --- Page routes ---
	r.GET("/", h.HomePage)
	r.GET("/admin", h.AdminDashboardPage)
	r.GET("/doctor/dashboard", h.DoctorDashboardPage)
	for _, page := range []string{"/login", "/signup", "/patient/login", "/doctor/login", "/admin-login"} {
		r.GET(page, h.AuthPage)
	}

	// --- Auth actions ---
	r.POST("/login", h.Login)
	r.POST("/signup", h.Signup)
	r.POST("/logout", h.Logout)

	// --- JSON API ---
	api := r.Group("/api")
	api.Use(middleware.Authenticate([]byte(cfg.JWTSecret)))
	{
		api.GET("/me", h.Me)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleStaff))
		{
			admin.GET("/users", h.ListUsers)
			admin.POST("/users", h.CreateUser)
			admin.PUT("/users/:id", h.UpdateUser)
			admin.DELETE("/users/:id", h.DeleteUser)

			admin.POST("/doctors", h.CreateDoctor)
			admin.PUT("/doctors/:id", h.UpdateDoctor)
			admin.DELETE("/doctors/:id", h.DeleteDoctor)

			admin.POST("/patients", h.CreatePatient)
			admin.PUT("/patients/:id", h.UpdatePatient)
			admin.DELETE("/patients/:id", h.DeletePatient)
		}

		api.GET("/doctors", h.ListDoctors)
		api.GET("/patients", middleware.RequireRoles(models.RoleAdmin, models.RoleStaff, models.RoleDoctor), h.ListPatients)

		api.POST("/appointments", h.CreateAppointment)
		api.GET("/appointments", h.GetAppointments)

		api.POST("/records", h.CreateRecord)
		api.GET("/records", h.GetRecords)
	}

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
