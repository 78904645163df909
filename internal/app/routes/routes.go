// Package routes maps the HTTP surface onto the controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/controllers"
)

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	professorController *controllers.ProfessorController,
	secretariaController *controllers.SecretariaController,
	alunoController *controllers.AlunoController,
	materiaController *controllers.MateriaController,
	turmaController *controllers.TurmaController,
	historicoController *controllers.HistoricoController,
	jwtAuth gin.HandlerFunc,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Funcionando"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	professores := router.Group("/professores")
	{
		professores.GET("", professorController.List)
		professores.GET("/:id", professorController.Get)
		professores.POST("", professorController.Create)
		professores.PUT("/:id", professorController.Update)
		professores.DELETE("/:id", professorController.Delete)
	}

	secretarias := router.Group("/secretarias")
	{
		secretarias.GET("", secretariaController.List)
		secretarias.GET("/:id", secretariaController.Get)
		secretarias.POST("", secretariaController.Create)
		secretarias.PUT("/:id", secretariaController.Update)
		secretarias.DELETE("/:id", secretariaController.Delete)
	}

	alunos := router.Group("/alunos")
	{
		alunos.GET("", alunoController.List)
		alunos.GET("/:id", alunoController.Get)
		alunos.GET("/:id/historicos-escolares", alunoController.ListHistoricos)
		alunos.POST("", alunoController.Create)
		alunos.PUT("/:id", alunoController.Update)
		alunos.DELETE("/:id", alunoController.Delete)
	}

	// The subject catalog is the only resource behind token auth.
	materias := router.Group("/materias")
	materias.Use(jwtAuth)
	{
		materias.GET("", materiaController.List)
		materias.GET("/:id", materiaController.Get)
		materias.POST("", materiaController.Create)
		materias.PUT("/:id", materiaController.Update)
		materias.DELETE("/:id", materiaController.Delete)
	}

	turmas := router.Group("/turmas")
	{
		turmas.GET("", turmaController.List)
		turmas.GET("/:id", turmaController.Get)
		turmas.POST("", turmaController.Create)
		turmas.PUT("/:id", turmaController.Update)
		turmas.DELETE("/:id", turmaController.Delete)
	}

	historicos := router.Group("/historicos-escolares")
	{
		historicos.GET("", historicoController.List)
		historicos.GET("/:id", historicoController.Get)
		historicos.POST("", historicoController.Create)
		historicos.PUT("/:id", historicoController.Update)
		historicos.DELETE("/:id", historicoController.Delete)
	}
}
