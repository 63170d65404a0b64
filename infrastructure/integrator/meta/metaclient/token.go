package metaclient

import (
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta/domain"
)

// ValidateAccessToken verifica se o token de acesso é aceito pela plataforma
func (c *MetaClient) ValidateAccessToken(accessToken string) (bool, error) {
	params := url.Values{}
	params.Add("fields", "id")

	_, err := c.get("me", accessToken, params)
	if err != nil {
		logrus.WithError(err).Debug("meta: access token validation failed")
		return false, nil
	}

	return true, nil
}

// GetUserInfo retorna os dados do usuário dono do token de acesso
func (c *MetaClient) GetUserInfo(accessToken string) (*metadomain.MetaUser, error) {
	params := url.Values{}
	params.Add("fields", "id,name,email")

	body, err := c.get("me", accessToken, params)
	if err != nil {
		return nil, err
	}

	var user metadomain.MetaUser
	if err := json.Unmarshal(body, &user); err != nil {
		logrus.WithError(err).Error("meta: failed to decode user info response")
		return nil, err
	}

	return &user, nil
}
