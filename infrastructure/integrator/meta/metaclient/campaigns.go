package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
)

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

func (c *MetaClient) ListCampaigns(accountID, accessToken string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status,objective,daily_budget,lifetime_budget,spend,impressions,clicks,ctr,cpc")

	path := fmt.Sprintf("%s/campaigns", normalizeAccountID(accountID))

	body, err := c.get(path, accessToken, params)
	if err != nil {
		return nil, err
	}

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("meta: failed to decode campaigns response")
		return nil, err
	}

	return response.Data, nil
}

// normalizeAccountID garante o prefixo act_ exigido pela Graph API
func normalizeAccountID(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
