package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
)

// ErrPartialDateRange indica que apenas uma das datas do período foi informada.
// As datas de início e fim devem ser fornecidas juntas ou nenhuma delas.
var ErrPartialDateRange = errors.New("período inválido: informe start_date e end_date juntos ou nenhum dos dois")

type ResponseInsights struct {
	Data   []metadomain.Insight `json:"data"`
	Paging metadomain.Paging    `json:"paging"`
}

// GetInsights busca as métricas diárias de uma entidade (conta, campanha,
// conjunto ou anúncio). Sem filtros, usa a janela padrão de 30 dias.
func (c *MetaClient) GetInsights(objectID, accessToken string, filters *domain.InsightFilters) ([]metadomain.Insight, error) {
	params := url.Values{}
	params.Add("fields", "date_start,date_stop,spend,impressions,clicks,ctr,cpc,cpm,reach,frequency")
	params.Add("time_increment", "1")

	switch {
	case filters == nil || (filters.StartDate == "" && filters.EndDate == ""):
		params.Add("date_preset", "last_30d")

	case filters.StartDate != "" && filters.EndDate != "":
		timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate, filters.EndDate)
		params.Add("time_range", timeRange)

	default:
		return nil, ErrPartialDateRange
	}

	body, err := c.get(fmt.Sprintf("%s/insights", objectID), accessToken, params)
	if err != nil {
		return nil, err
	}

	var response ResponseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: failed to decode insights response")
		return nil, err
	}

	return response.Data, nil
}
