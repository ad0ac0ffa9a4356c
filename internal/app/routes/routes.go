package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yraj/offerdesk/internal/app/controllers"
	"github.com/yraj/offerdesk/internal/app/models"
	"github.com/yraj/offerdesk/internal/app/models/dto"
	"github.com/yraj/offerdesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	letterController *controllers.LetterController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Course routes
		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.GET("/fee-preview", courseController.GetFeePreview)
			courses.GET("/:id", courseController.GetCourseByID)

			// Course management is restricted to admins
			coursesAdminProtected := courses.Group("")
			coursesAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				coursesAdminProtected.POST("", courseController.CreateCourse)
				coursesAdminProtected.PUT("/:id", courseController.UpdateCourse)
				coursesAdminProtected.DELETE("/:id", courseController.DeleteCourse)
			}
		}

		// Student routes
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAllStudents)
			// Fixed paths registered before the :id parameter route
			students.GET("/next-id", studentController.GetNextStudentID)
			students.GET("/highest", studentController.GetHighestStudent)
			students.GET("/:id", studentController.GetStudentByID)

			students.POST("", studentController.CreateStudent)
			students.PUT("/:id", studentController.UpdateStudent)
			students.POST("/:id/offer-letter", letterController.GenerateOfferLetter)

			// Deleting admission records is restricted to admins
			studentsAdminProtected := students.Group("")
			studentsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				studentsAdminProtected.DELETE("/:id", studentController.DeleteStudent)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger and metrics routes are set up in bootstrap.go
}
