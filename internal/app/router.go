package app

import (
	"buriti_backend/docs"
	"buriti_backend/internal/config"
	"buriti_backend/internal/middleware"
	"buriti_backend/internal/model"
	"buriti_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAuthenticatedRoutes(router, c, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/ping", c.health.Ping)
		public.GET("/health", c.health.Health)
		public.POST("/login", c.auth.Login)
		public.GET("/courses", c.course.List)
		public.GET("/courses/:id", c.course.Get)
		public.GET("/noticias", c.news.List)
	}
}

func (a *App) registerAuthenticatedRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	auth := router.Group("/api")
	auth.Use(middleware.AuthMiddleware(cfg))
	{
		// Course content and completion, enrollment-guarded inside.
		auth.GET("/courses/:id/conteudo", c.course.Content)
		auth.GET("/courses/:id/certificado", c.course.Certificate)

		// Progress: read self-or-admin, write self only.
		auth.GET("/progress/:userId", c.progress.Get)
		auth.POST("/progress", c.progress.SetWatched)

		auth.GET("/matriculas", c.enrollment.ListOwn)
		auth.GET("/users", c.enrollment.Classmates)
		auth.PUT("/users/:id", c.user.UpdateSelf)

		auth.GET("/foruns", c.forum.List)
		auth.GET("/foruns/:id/messages", c.forum.ListMessages)
		auth.POST("/foruns/:id/messages", c.forum.PostMessage)

		auth.POST("/quizzes/:id/responses", c.content.SubmitQuizResponse)
		auth.GET("/modulos/:id/uploads", c.content.ListUploads)

		auth.GET("/tarefas", c.task.List)
		auth.POST("/tarefas/:id/responses", c.task.SubmitResponse)
		auth.PUT("/tarefas/:id", c.task.Update)

		auth.GET("/testes", c.test.List)
		auth.GET("/notas", c.grade.ListOwn)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/courses", c.course.Create)
		admin.PUT("/courses/:id", c.course.Update)
		admin.DELETE("/courses/:id", c.course.Delete)
		admin.PUT("/courses/:id/reorder-modulos", c.course.ReorderModules)
		admin.GET("/courses/:id/students", c.course.Students)
		admin.GET("/courses/:id/matriculados", c.course.Roster)

		admin.POST("/modulos", c.module.Create)
		admin.DELETE("/modulos/:id", c.module.Delete)

		admin.POST("/aulas", c.module.CreateLesson)
		admin.PUT("/aulas/:id", c.module.UpdateLesson)
		admin.DELETE("/aulas/:id", c.module.DeleteLesson)

		admin.POST("/videos", c.content.CreateVideo)
		admin.DELETE("/videos/:id", c.content.DeleteVideo)
		admin.GET("/videos/upload-progress/:uploadId", c.content.UploadProgress)
		admin.PUT("/courses/:id/modulos/:moduleId/reorder-videos", c.content.ReorderVideos)

		admin.POST("/aulas-ao-vivo", c.content.CreateLiveSession)
		admin.DELETE("/aulas-ao-vivo/:id", c.content.DeleteLiveSession)
		admin.PUT("/courses/:id/modulos/:moduleId/reorder-aulas-ao-vivo", c.content.ReorderLiveSessions)

		admin.POST("/quizzes", c.content.CreateQuiz)
		admin.DELETE("/quizzes/:id", c.content.DeleteQuiz)
		admin.PUT("/courses/:id/modulos/:moduleId/reorder-quizzes", c.content.ReorderQuizzes)

		admin.POST("/uploads", c.content.CreateUpload)
		admin.DELETE("/uploads/:id", c.content.DeleteUpload)
		admin.PUT("/courses/:id/modulos/:moduleId/reorder-uploads", c.content.ReorderUploads)

		admin.POST("/foruns", c.forum.Create)
		admin.DELETE("/foruns/:id", c.forum.Delete)
		admin.PUT("/courses/:id/modulos/:moduleId/reorder-foruns", c.forum.Reorder)

		admin.POST("/matriculas", c.enrollment.Create)
		admin.PUT("/matriculas/:id", c.enrollment.Update)
		admin.DELETE("/matriculas/:id", c.enrollment.Delete)

		admin.POST("/tarefas", c.task.Create)
		admin.DELETE("/tarefas/:id", c.task.Delete)

		admin.POST("/testes", c.test.Create)
		admin.PUT("/testes/:id", c.test.Update)
		admin.DELETE("/testes/:id", c.test.Delete)

		admin.POST("/notas", c.grade.Create)

		admin.POST("/noticias", c.news.Create)
		admin.PUT("/noticias/:id", c.news.Update)
		admin.DELETE("/noticias/:id", c.news.Delete)

		admin.GET("/admin/students", c.user.ListStudents)
		admin.GET("/students/progress", c.progress.CourseSummary)
	}
}
