package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/swasth-api/internal/middleware"
	"github.com/harentsoaR/swasth-api/internal/models"
)

// NewRouter builds the gin engine with middleware and every route.
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(h.Logger))

	// ---  Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", h.Health)

	// --- Routes ---
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.Login)
	}

	api := r.Group("/api")
	{
		api.GET("/medicines", h.GetMedicines)
		api.GET("/medicines/search", h.SearchMedicines)
		api.GET("/doctors", h.GetDoctors)
		api.POST("/appointments", h.CreateAppointment)
		api.GET("/health-tips", h.GetHealthTips)
		api.GET("/clinics", h.GetNearbyClinics)
		api.GET("/clinics/search", h.SearchClinics)

		flowRoutes := api.Group("/flows")
		{
			flowRoutes.POST("/analyze-symptoms", h.AnalyzeSymptoms)
			flowRoutes.POST("/medical-advice", h.SuggestMedicalAdvice)
			flowRoutes.POST("/extract-prescription", h.ExtractPrescriptionText)
		}
	}

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(h.JWT))
	{
		protected.GET("/me", h.GetCurrentUser)

		admin := protected.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/appointments", h.GetAppointments)
			admin.POST("/doctors", h.CreateDoctor)
		}
	}

	return r
}
