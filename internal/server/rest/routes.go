package rest

func (s *Server) routes() {
	api := s.echo.Group(s.basePath)

	api.GET("/health", s.health)

	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)
	api.GET("/auth/profile", s.profile, s.requireAuth)
	api.PUT("/auth/me", s.updateProfile, s.requireAuth)

	api.POST("/tasks", s.createTask, s.requireAuth)
	api.GET("/tasks", s.listTasks, s.requireAuth)
	api.GET("/tasks/:id", s.getTask, s.requireAuth)
	api.PUT("/tasks/:id", s.updateTask, s.requireAuth)
	api.DELETE("/tasks/:id", s.deleteTask, s.requireAuth)
}
