package chatting

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vfg2006/ads-copilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
	"github.com/vfg2006/ads-copilot-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-copilot-api/pkg/utils"
)

// Palavras-chave do despacho, em ordem de prioridade. A primeira
// categoria que casar define o recurso buscado na plataforma.
// Contas usam apenas frases compostas: "accounts" sozinho é termo
// genérico e não pode atropelar as palavras-chave de campanha.
var (
	accountPhrases = []string{"ad accounts", "ad account", "contas de anúncio", "conta de anúncio"}
	campaignTokens = []string{"campaign", "campaigns", "campanha", "campanhas"}
	insightTokens  = []string{"insight", "insights", "performance", "spend", "trend", "desempenho", "gasto", "gastos", "tendência"}
	adsetPhrases   = []string{"ad set", "ad sets", "conjunto de anúncios", "conjuntos de anúncios"}
	adsetTokens    = []string{"adset", "adsets", "targeting", "segmentação"}
	adTokens       = []string{"ad", "ads", "creative", "anúncio", "anúncios", "criativo", "criativos"}
	chartTokens    = []string{"chart", "graph", "visualize", "show", "gráfico", "visualizar"}
	helpTokens     = []string{"how", "como", "performance", "desempenho"}
)

const helpMessage = "Posso ajudar com suas campanhas de anúncios. Experimente perguntar " +
	"sobre suas campanhas, contas de anúncio, desempenho ou peça um gráfico de gastos."

const performanceTip = "Dica: campanhas com CTR abaixo de 1.5% costumam se beneficiar de " +
	"novos criativos ou de ajuste no público-alvo. Use /chat/analyze para uma análise completa."

type Chatter interface {
	HandleMessage(metaAccountID *string, accessToken string, req *domain.ChatMessageRequest) (*domain.ChatReply, error)
	Analyze(metaAccountID *string, accessToken string) (*domain.ChatAnalysis, error)
	Suggestions() []string
}

type Service struct {
	integrator meta.Integrator
	insighter  insighting.Insighter
}

func NewService(integrator meta.Integrator, insighter insighting.Insighter) Chatter {
	return &Service{
		integrator: integrator,
		insighter:  insighter,
	}
}

// HandleMessage despacha a mensagem por palavras-chave, busca o recurso
// correspondente na plataforma e monta a resposta em blocos de texto
func (s *Service) HandleMessage(metaAccountID *string, accessToken string, req *domain.ChatMessageRequest) (*domain.ChatReply, error) {
	content := strings.ToLower(strings.TrimSpace(req.Content))
	tokens := tokenize(content)

	kind := detectResource(content, tokens)

	data, err := s.fetchData(kind, metaAccountID, accessToken)
	if err != nil {
		return nil, err
	}

	reply := &domain.ChatReply{
		Data:            data,
		Recommendations: []domain.Recommendation{},
	}

	var blocks []string

	if listing := describeData(data); listing != "" {
		blocks = append(blocks, listing)
	}

	if data.Kind == domain.ResourceCampaigns && len(data.Campaigns) > 0 {
		reply.Recommendations = s.insighter.Recommend(data.Campaigns)
		if len(reply.Recommendations) > 0 {
			blocks = append(blocks, describeRecommendations(reply.Recommendations))
		}
	}

	if hasAnyToken(tokens, chartTokens) {
		reply.ChartSpec = buildChart(data)
		if reply.ChartSpec != nil {
			blocks = append(blocks, "Preparei um gráfico com esses dados para você visualizar melhor.")
		}
	}

	if hasAnyToken(tokens, helpTokens) {
		blocks = append(blocks, performanceTip)
	}

	if len(blocks) == 0 {
		blocks = append(blocks, helpMessage)
	}

	reply.Response = strings.Join(blocks, "\n\n")
	return reply, nil
}

// Analyze combina o resumo agregado, as recomendações e o gráfico
// de performance das campanhas da conta
func (s *Service) Analyze(metaAccountID *string, accessToken string) (*domain.ChatAnalysis, error) {
	accountID := s.resolveAccountID(metaAccountID, accessToken)
	if accountID == "" {
		return &domain.ChatAnalysis{
			Analysis:        s.insighter.SummarizeCampaigns(nil),
			Recommendations: []domain.Recommendation{},
		}, nil
	}

	campaigns, err := s.integrator.ListCampaigns(accountID, accessToken)
	if err != nil {
		return nil, err
	}

	analysis := &domain.ChatAnalysis{
		Analysis:        s.insighter.SummarizeCampaigns(campaigns),
		Recommendations: s.insighter.Recommend(campaigns),
	}

	if len(campaigns) > 0 {
		analysis.ChartSpec = BuildCampaignPerformanceChart(campaigns)
	}

	return analysis, nil
}

// Suggestions retorna perguntas prontas exibidas no chat
func (s *Service) Suggestions() []string {
	return []string{
		"Mostre minhas campanhas",
		"Como está o desempenho das minhas campanhas?",
		"Mostre um gráfico de gastos dos últimos dias",
		"Quais são minhas contas de anúncio?",
		"Quais anúncios estão ativos?",
	}
}

func (s *Service) fetchData(kind domain.ResourceKind, metaAccountID *string, accessToken string) (*domain.FetchedData, error) {
	data := &domain.FetchedData{Kind: kind}

	if kind == domain.ResourceNone {
		return data, nil
	}

	if kind == domain.ResourceAccounts {
		accounts, err := s.integrator.ListAdAccounts(accessToken)
		if err != nil {
			return nil, err
		}
		data.Accounts = accounts
		return data, nil
	}

	accountID := s.resolveAccountID(metaAccountID, accessToken)
	if accountID == "" {
		return data, nil
	}

	switch kind {
	case domain.ResourceCampaigns:
		campaigns, err := s.integrator.ListCampaigns(accountID, accessToken)
		if err != nil {
			return nil, err
		}
		data.Campaigns = campaigns

	case domain.ResourceInsights:
		insights, err := s.integrator.GetInsights(accountID, accessToken, nil)
		if err != nil {
			return nil, err
		}
		data.Insights = insights

	case domain.ResourceAdSets:
		adsets, err := s.listAccountAdSets(accountID, accessToken)
		if err != nil {
			return nil, err
		}
		data.AdSets = adsets

	case domain.ResourceAds:
		adsets, err := s.listAccountAdSets(accountID, accessToken)
		if err != nil {
			return nil, err
		}
		for _, adset := range adsets {
			ads, err := s.integrator.ListAds(adset.ID, accessToken)
			if err != nil {
				return nil, err
			}
			data.Ads = append(data.Ads, ads...)
		}
	}

	return data, nil
}

// listAccountAdSets percorre as campanhas da conta agregando os conjuntos
func (s *Service) listAccountAdSets(accountID, accessToken string) ([]domain.AdSet, error) {
	campaigns, err := s.integrator.ListCampaigns(accountID, accessToken)
	if err != nil {
		return nil, err
	}

	var adsets []domain.AdSet
	for _, campaign := range campaigns {
		batch, err := s.integrator.ListAdSets(campaign.ID, accessToken)
		if err != nil {
			return nil, err
		}
		adsets = append(adsets, batch...)
	}

	return adsets, nil
}

// resolveAccountID usa a conta vinculada ao usuário; sem vínculo,
// cai na primeira conta listada pela plataforma
func (s *Service) resolveAccountID(metaAccountID *string, accessToken string) string {
	if metaAccountID != nil && *metaAccountID != "" {
		return *metaAccountID
	}

	accounts, err := s.integrator.ListAdAccounts(accessToken)
	if err != nil || len(accounts) == 0 {
		return ""
	}

	return accounts[0].ID
}

func detectResource(content string, tokens map[string]bool) domain.ResourceKind {
	if hasAnyPhrase(content, accountPhrases) {
		return domain.ResourceAccounts
	}

	if hasAnyToken(tokens, campaignTokens) {
		return domain.ResourceCampaigns
	}

	if hasAnyToken(tokens, insightTokens) {
		return domain.ResourceInsights
	}

	if hasAnyPhrase(content, adsetPhrases) || hasAnyToken(tokens, adsetTokens) {
		return domain.ResourceAdSets
	}

	if hasAnyToken(tokens, adTokens) {
		return domain.ResourceAds
	}

	return domain.ResourceNone
}

// tokenize separa o texto em palavras, preservando letras acentuadas
func tokenize(content string) map[string]bool {
	words := strings.FieldsFunc(content, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	tokens := make(map[string]bool, len(words))
	for _, w := range words {
		tokens[w] = true
	}
	return tokens
}

func hasAnyToken(tokens map[string]bool, keywords []string) bool {
	for _, k := range keywords {
		if tokens[k] {
			return true
		}
	}
	return false
}

func hasAnyPhrase(content string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(content, p) {
			return true
		}
	}
	return false
}

func describeData(data *domain.FetchedData) string {
	if data.Kind == domain.ResourceNone {
		return ""
	}

	if data.IsEmpty() {
		return "Não encontrei dados para essa consulta na sua conta de anúncios."
	}

	var b strings.Builder

	switch data.Kind {
	case domain.ResourceAccounts:
		fmt.Fprintf(&b, "Você tem %d conta(s) de anúncio:\n", len(data.Accounts))
		for _, a := range data.Accounts {
			fmt.Fprintf(&b, "• %s (%s) — moeda %s\n", a.Name, a.Status, a.Currency)
		}

	case domain.ResourceCampaigns:
		fmt.Fprintf(&b, "Você tem %d campanha(s):\n", len(data.Campaigns))
		for _, c := range data.Campaigns {
			fmt.Fprintf(&b, "• %s (%s) — CTR %.2f%%, CPC R$ %.2f, gasto %s\n",
				c.Name, c.Status, c.CTR, c.CPC, utils.FormatMoney(c.Spend))
		}

	case domain.ResourceInsights:
		var spend, impressions, clicks int64
		for _, in := range data.Insights {
			spend += in.Spend
			impressions += in.Impressions
			clicks += in.Clicks
		}
		fmt.Fprintf(&b, "Resumo dos últimos %d dia(s): gasto total de %s, %d impressões e %d cliques.",
			len(data.Insights), utils.FormatMoney(spend), impressions, clicks)

	case domain.ResourceAdSets:
		fmt.Fprintf(&b, "Você tem %d conjunto(s) de anúncios:\n", len(data.AdSets))
		for _, a := range data.AdSets {
			fmt.Fprintf(&b, "• %s (%s)\n", a.Name, a.Status)
		}

	case domain.ResourceAds:
		fmt.Fprintf(&b, "Você tem %d anúncio(s):\n", len(data.Ads))
		for _, a := range data.Ads {
			if a.Creative != nil && a.Creative.Title != "" {
				fmt.Fprintf(&b, "• %s (%s) — \"%s\"\n", a.Name, a.Status, a.Creative.Title)
			} else {
				fmt.Fprintf(&b, "• %s (%s)\n", a.Name, a.Status)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func describeRecommendations(recommendations []domain.Recommendation) string {
	var b strings.Builder
	b.WriteString("Recomendações:\n")
	for _, r := range recommendations {
		fmt.Fprintf(&b, "• %s\n", r.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

func buildChart(data *domain.FetchedData) *domain.ChartSpec {
	switch data.Kind {
	case domain.ResourceCampaigns:
		if len(data.Campaigns) > 0 {
			return BuildCampaignPerformanceChart(data.Campaigns)
		}
	case domain.ResourceInsights:
		if len(data.Insights) > 0 {
			return BuildSpendTrendChart(data.Insights)
		}
	}
	return nil
}
