package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/app/services"
	"github.com/escoladigital/sge/internal/middleware"
)

const msgAlunoNaoEncontrado = "Aluno não encontrado"

// AlunoController serves the /alunos resource.
type AlunoController struct {
	alunos     *services.AlunoService
	historicos *services.HistoricoService
}

// NewAlunoController creates a new AlunoController.
func NewAlunoController(alunos *services.AlunoService, historicos *services.HistoricoService) *AlunoController {
	return &AlunoController{alunos: alunos, historicos: historicos}
}

// List responds with every student.
func (ctrl *AlunoController) List(c *gin.Context) {
	alunos, err := ctrl.alunos.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, alunos)
}

// Get responds with one student or 404.
func (ctrl *AlunoController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	aluno, err := ctrl.alunos.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if aluno == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgAlunoNaoEncontrado})
		return
	}
	c.JSON(http.StatusOK, aluno)
}

// ListHistoricos responds with every transcript of one student.
func (ctrl *AlunoController) ListHistoricos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	aluno, err := ctrl.alunos.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if aluno == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgAlunoNaoEncontrado})
		return
	}

	historicos, err := ctrl.historicos.ListByAluno(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, historicos)
}

// Create registers a student account.
func (ctrl *AlunoController) Create(c *gin.Context) {
	var req dto.NovoAlunoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	aluno, err := ctrl.alunos.Create(c.Request.Context(), &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, aluno)
}

// Update rewrites a student account.
func (ctrl *AlunoController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.NovoAlunoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	aluno, err := ctrl.alunos.Update(c.Request.Context(), id, &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, aluno)
}

// Delete removes a student account.
func (ctrl *AlunoController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.alunos.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
