package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
)

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

func (c *MetaClient) ListAds(adsetID, accessToken string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,adset_id,creative")

	body, err := c.get(fmt.Sprintf("%s/ads", adsetID), accessToken, params)
	if err != nil {
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: failed to decode ads response")
		return nil, err
	}

	return response.Data, nil
}
