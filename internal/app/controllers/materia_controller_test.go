package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/app/services"
)

func newMateriaRouter(t *testing.T) (*gin.Engine, pgxmock.PgxPoolIface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	ctrl := NewMateriaController(services.NewMateriaService(repositories.NewMateriaRepository(mock)))

	router := gin.New()
	router.GET("/materias", ctrl.List)
	router.GET("/materias/:id", ctrl.Get)
	router.POST("/materias", ctrl.Create)
	router.PUT("/materias/:id", ctrl.Update)
	router.DELETE("/materias/:id", ctrl.Delete)
	return router, mock
}

func TestMateriaControllerList(t *testing.T) {
	router, mock := newMateriaRouter(t)

	mock.ExpectQuery("SELECT id_materias, nome FROM materias").
		WillReturnRows(pgxmock.NewRows([]string{"id_materias", "nome"}).
			AddRow(int64(1), "Português").
			AddRow(int64(2), "Matemática"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/materias", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var materias []models.Materia
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &materias))
	require.Len(t, materias, 2)
	assert.Equal(t, "Português", materias[0].Nome)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMateriaControllerGetNonNumericIDIsBadRequest(t *testing.T) {
	router, mock := newMateriaRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/materias/abc", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"id inválido"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMateriaControllerGetMissIsNotFound(t *testing.T) {
	router, mock := newMateriaRouter(t)

	mock.ExpectQuery("SELECT id_materias, nome FROM materias").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/materias/9", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Matéria não encontrada"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMateriaControllerCreate(t *testing.T) {
	router, mock := newMateriaRouter(t)

	mock.ExpectQuery("INSERT INTO materias").
		WithArgs("História").
		WillReturnRows(pgxmock.NewRows([]string{"id_materias"}).AddRow(int64(5)))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/materias", strings.NewReader(`{"nome":"História"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var materia models.Materia
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &materia))
	assert.Equal(t, int64(5), materia.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMateriaControllerCreateEmptyNomeIsBadRequest(t *testing.T) {
	router, mock := newMateriaRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/materias", strings.NewReader(`{"nome":"  "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMateriaControllerDelete(t *testing.T) {
	router, mock := newMateriaRouter(t)

	mock.ExpectExec("DELETE FROM materias").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/materias/5", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMateriaControllerDeleteMissIsNotFound(t *testing.T) {
	router, mock := newMateriaRouter(t)

	mock.ExpectExec("DELETE FROM materias").
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/materias/9", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Matéria não encontrada"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
