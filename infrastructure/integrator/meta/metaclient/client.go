package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-copilot-api/internal/config"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
)

type Client interface {
	ListAdAccounts(accessToken string) ([]metadomain.AdAccount, error)
	ListCampaigns(accountID, accessToken string) ([]metadomain.Campaign, error)
	ListAdSets(campaignID, accessToken string) ([]metadomain.AdSet, error)
	ListAds(adsetID, accessToken string) ([]metadomain.Ad, error)
	GetInsights(objectID, accessToken string, filters *domain.InsightFilters) ([]metadomain.Insight, error)
	UpdateCampaignStatus(campaignID, accessToken, status string) error
	UpdateCampaignBudget(campaignID, accessToken string, dailyBudget int64) error
	ValidateAccessToken(accessToken string) (bool, error)
	GetUserInfo(accessToken string) (*metadomain.MetaUser, error)
}

type MetaClient struct {
	Cfg *config.Config
	// Pool de conexões de saída compartilhado pelo processo
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get monta a URL com o token de acesso do chamador e executa a requisição
func (c *MetaClient) get(path string, accessToken string, params url.Values) ([]byte, error) {
	params.Add("access_token", accessToken)

	fullURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, path, params.Encode())

	req, err := http.NewRequest(http.MethodGet, fullURL, nil)
	if err != nil {
		logrus.WithError(err).Error("meta: failed to build request")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("meta: request failed")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(path, resp)
}

// post envia um formulário para a Graph API (mutações de status/budget)
func (c *MetaClient) post(path string, accessToken string, form url.Values) ([]byte, error) {
	params := url.Values{}
	params.Add("access_token", accessToken)

	fullURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, path, params.Encode())

	req, err := http.NewRequest(http.MethodPost, fullURL, strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("meta: failed to build request")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("meta: request failed")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(path, resp)
}

// handleResponse lê o corpo e converte status não-2xx ou marcador de erro
// embutido no payload em erro Go. O corpo do erro nunca carrega o token.
func (c *MetaClient) handleResponse(path string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var errResponse metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.HasError() {
		logrus.WithFields(logrus.Fields{
			"path":        path,
			"status_code": resp.StatusCode,
			"error_code":  errResponse.Error.Code,
			"error_type":  errResponse.Error.Type,
		}).Warn("meta: upstream returned error payload")

		if errResponse.IsTokenError() {
			return nil, fmt.Errorf("meta: token inválido ou expirado (código %d)", errResponse.Error.Code)
		}

		return nil, fmt.Errorf("meta: erro da plataforma (código %d): %s", errResponse.Error.Code, errResponse.Error.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.WithFields(logrus.Fields{
			"path":        path,
			"status_code": resp.StatusCode,
		}).Warn("meta: unexpected upstream status")

		return nil, fmt.Errorf("meta: status inesperado %d em %s", resp.StatusCode, path)
	}

	return body, nil
}
