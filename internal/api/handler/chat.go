package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/chatting"
	"github.com/vfg2006/ads-copilot-api/pkg/apiErrors"
)

// ChatMessage recebe a mensagem do usuário e devolve a resposta composta
// com os dados buscados na plataforma de anúncios
func ChatMessage(service chatting.Chatter, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ChatMessageRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Content == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Mensagem não pode ser vazia", nil)
			return
		}

		accessToken, metaAccountID, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		reply, err := service.HandleMessage(metaAccountID, accessToken, &req)
		if err != nil {
			logrus.WithError(err).Error("chat: failed to handle message")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar mensagem", nil)
			return
		}

		writeJSON(w, reply)
	}
}

// ChatSuggestions retorna a lista estática de perguntas sugeridas
func ChatSuggestions(service chatting.Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string][]string{"suggestions": service.Suggestions()})
	}
}

// ChatAnalyze devolve o resumo agregado das campanhas do usuário,
// com recomendações e gráfico
func ChatAnalyze(service chatting.Chatter, auth authenticating.Authenticator, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accessToken, metaAccountID, ok := metaCredentials(w, r, auth, cfg)
		if !ok {
			return
		}

		analysis, err := service.Analyze(metaAccountID, accessToken)
		if err != nil {
			logrus.WithError(err).Error("chat: failed to analyze campaigns")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao analisar campanhas", nil)
			return
		}

		writeJSON(w, analysis)
	}
}
