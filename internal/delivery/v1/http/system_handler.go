package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
)

type SystemHandler struct {
	diagnosticsUsecase usecase.DiagnosticsUC
	logger             logger.Logger
	now                func() time.Time
}

func NewSystemHandler(diagnosticsUsecase usecase.DiagnosticsUC, logger logger.Logger) *SystemHandler {
	return &SystemHandler{diagnosticsUsecase: diagnosticsUsecase, logger: logger, now: time.Now}
}

// root
//
//	@Summary	Статус сервиса
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	RootResponse
//	@Router		/ [get]
func (s *SystemHandler) root(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, newRootResponse(s.now()))
}

// diagnostics
//
//	@Summary		Диагностика подключения к хранилищу
//	@Description	Проверяет, настроено ли хранилище каталога, и перечисляет до десяти коллекций или таблиц
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	DiagnosticsResponse
//	@Router			/test [get]
func (s *SystemHandler) diagnostics(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toDiagnosticsResponse(s.diagnosticsUsecase.Diagnose(r.Context())))
}
