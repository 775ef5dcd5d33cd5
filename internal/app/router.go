package app

import (
	"shakti_backend/docs"
	"shakti_backend/internal/config"
	"shakti_backend/internal/middleware"
	"shakti_backend/internal/model"
	"shakti_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// The catalog is browsable without an account so girls can see
		// what is on offer before signing up.
		public.GET("/courses", middleware.TryAuthMiddleware(a.Config), c.course.ListCourses)
		public.GET("/courses/:courseId", middleware.TryAuthMiddleware(a.Config), c.course.GetCourse)
		public.GET("/products", c.product.List)
		public.GET("/products/:id", c.product.Get)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)
		authGroup.POST("/user/avatar", c.user.UploadAvatar)

		// Learning
		authGroup.POST("/courses/:courseId/enroll", c.learning.Enroll)
		authGroup.GET("/enrollments", c.learning.ListEnrollments)
		authGroup.GET("/courses/:courseId/progress", c.learning.GetProgress)
		authGroup.POST("/courses/:courseId/modules/:moduleId/items/:itemId/complete", c.learning.CompleteItem)
		authGroup.POST("/courses/:courseId/modules/:moduleId/items/:itemId/quiz", c.learning.SubmitQuiz)

		// Certificates
		authGroup.GET("/courses/:courseId/certificate", c.certificate.Status)
		authGroup.GET("/certificates", c.certificate.List)

		// Mentor chatbot
		authGroup.POST("/chat", c.chat.Ask)
		authGroup.POST("/chat/stream", c.chat.AskStream)
		authGroup.GET("/chat/history", c.chat.History)

		// Translation
		authGroup.POST("/translate", c.translate.Translate)

		// Orders (buyer side)
		authGroup.POST("/orders", c.order.Place)
		authGroup.GET("/orders", c.order.ListMine)

		// Seller catalog management
		seller := authGroup.Group("/seller")
		seller.Use(middleware.RoleMiddleware(model.Seller, model.Admin))
		{
			seller.POST("/products", c.product.Create)
			seller.GET("/products", c.product.ListMine)
			seller.PUT("/products/:id", c.product.Update)
			seller.DELETE("/products/:id", c.product.Delete)
			seller.POST("/products/:id/image", c.product.UploadImage)
			seller.GET("/orders", c.order.ListForSeller)
			seller.PATCH("/orders/:orderId/status", c.order.UpdateStatus)
		}
	}
}
