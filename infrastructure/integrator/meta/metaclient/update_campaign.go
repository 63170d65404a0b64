package metaclient

import (
	"net/url"
	"strconv"
)

// UpdateCampaignStatus altera o status de uma campanha (ACTIVE/PAUSED)
func (c *MetaClient) UpdateCampaignStatus(campaignID, accessToken, status string) error {
	form := url.Values{}
	form.Add("status", status)

	_, err := c.post(campaignID, accessToken, form)
	return err
}

// UpdateCampaignBudget altera o orçamento diário da campanha, em centavos
func (c *MetaClient) UpdateCampaignBudget(campaignID, accessToken string, dailyBudget int64) error {
	form := url.Values{}
	form.Add("daily_budget", strconv.FormatInt(dailyBudget, 10))

	_, err := c.post(campaignID, accessToken, form)
	return err
}
