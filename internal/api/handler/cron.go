package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-copilot-api/internal/scheduler"
	"github.com/vfg2006/ads-copilot-api/pkg/apiErrors"
)

// Tipos de cron job executáveis manualmente
const (
	CronJobTypePerformance = "performance"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PerformanceSyncService *scheduler.PerformanceSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePerformance:
			if services.PerformanceSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots de desempenho não disponível", nil)
				return
			}
			services.PerformanceSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de cron job desconhecido: "+cronType, nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, map[string]any{
			"success": true,
			"message": "Cron job iniciada em segundo plano",
		})
	}
}

// CronStatus retorna o estado dos agendadores
func CronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.PerformanceSyncService != nil {
			status["performance"] = services.PerformanceSyncService.GetStatus()
		}

		writeJSON(w, status)
	}
}
