package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
)

type ResponseAdSets struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

func (c *MetaClient) ListAdSets(campaignID, accessToken string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,campaign_id,daily_budget,lifetime_budget")

	body, err := c.get(fmt.Sprintf("%s/adsets", campaignID), accessToken, params)
	if err != nil {
		return nil, err
	}

	var response ResponseAdSets
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: failed to decode adsets response")
		return nil, err
	}

	return response.Data, nil
}
