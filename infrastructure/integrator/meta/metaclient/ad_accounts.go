package metaclient

import (
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
)

type ResponseAdAccounts struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// TODO adicionar loop para pegar todas as páginas
func (c *MetaClient) ListAdAccounts(accessToken string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,name,account_status,currency,timezone_name")

	body, err := c.get("me/adaccounts", accessToken, params)
	if err != nil {
		return nil, err
	}

	var response ResponseAdAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: failed to decode ad accounts response")
		return nil, err
	}

	return response.Data, nil
}
