package usecase

import (
	"context"

	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
)

const (
	backendRunning         = "✅ Running"
	databaseNotAvailable   = "❌ Not Available"
	databaseAvailable      = "✅ Available"
	databaseWorking        = "✅ Connected & Working"
	databaseErrorPrefix    = "⚠️  Connected but Error: "
	connectionConnected    = "Connected"
	connectionNotConnected = "Not Connected"
	envSet                 = "✅ Set"
	envNotSet              = "❌ Not Set"

	maxCollections  = 10
	maxErrorMessage = 50
)

// DiagnosticsUseCase собирает отчёт о подключении к хранилищу каталога.
type DiagnosticsUseCase struct {
	repo            ProductRepository // nil, если хранилище не настроено
	databaseURLSet  bool
	databaseNameSet bool
	logger          logger.Logger
}

func NewDiagnosticsUC(repo ProductRepository, databaseURLSet, databaseNameSet bool, logger logger.Logger) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{
		repo:            repo,
		databaseURLSet:  databaseURLSet,
		databaseNameSet: databaseNameSet,
		logger:          logger,
	}
}

func (d *DiagnosticsUseCase) Diagnose(ctx context.Context) *DiagnosticsRes {
	res := &DiagnosticsRes{
		Backend:          backendRunning,
		Database:         databaseNotAvailable,
		ConnectionStatus: connectionNotConnected,
		Collections:      []string{},
		DatabaseURL:      envStatus(d.databaseURLSet),
		DatabaseName:     envStatus(d.databaseNameSet),
	}

	if d.repo == nil {
		return res
	}

	res.Database = databaseAvailable
	res.ConnectionStatus = connectionConnected

	diag, err := d.repo.Diagnose(ctx)
	if err != nil {
		d.logger.Warnf("store diagnostics failed: %v", err)
		res.Database = databaseErrorPrefix + truncate(err.Error(), maxErrorMessage)
		return res
	}

	res.Database = databaseWorking
	if len(diag.Collections) > maxCollections {
		res.Collections = diag.Collections[:maxCollections]
	} else if diag.Collections != nil {
		res.Collections = diag.Collections
	}

	return res
}

func envStatus(set bool) string {
	if set {
		return envSet
	}

	return envNotSet
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
