package domain

import "time"

// Limiares fixos usados na geração de estratégias de otimização
const (
	StrategyMinCTR       = 1.0
	StrategyMaxCPC       = 2.0
	StrategyTargetCPM    = 15.0
	StrategyMinReach     = 10000
	StrategyBudgetFactor = 0.8
	StrategyBudgetRaise  = 1.2
	StrategyIncreaseCPC  = 1.5
	StrategyIncreaseCTR  = 2.0
)

type StrategyRules struct {
	MinCTR          float64 `json:"min_ctr"`
	MaxCPC          float64 `json:"max_cpc"`
	TargetCPM       float64 `json:"target_cpm"`
	BudgetThreshold float64 `json:"budget_threshold"`
}

// StrategyActions são predicados booleanos independentes calculados
// sobre o insight mais recente da campanha.
type StrategyActions struct {
	PauseLowPerforming bool `json:"pause_low_performing"`
	IncreaseBudget     bool `json:"increase_budget"`
	AdjustBidding      bool `json:"adjust_bidding"`
	ExpandAudience     bool `json:"expand_audience"`
}

type StrategyMetrics struct {
	Spend       int64   `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CTR         float64 `json:"ctr"`
	CPC         float64 `json:"cpc"`
	CPM         float64 `json:"cpm"`
	Reach       int64   `json:"reach"`
}

// OptimizationStrategy é derivada de forma síncrona e nunca armazenada;
// quando solicitado, é executada imediatamente contra a plataforma.
type OptimizationStrategy struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id,omitempty"`
	CampaignID   string          `json:"campaign_id"`
	CampaignName string          `json:"campaign_name"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Rules        StrategyRules   `json:"rules"`
	Actions      StrategyActions `json:"actions"`
	Metrics      StrategyMetrics `json:"performance_metrics"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StrategyExecution é o resultado da aplicação das ações de uma
// estratégia contra a plataforma de anúncios
type StrategyExecution struct {
	StrategyID string    `json:"strategy_id"`
	CampaignID string    `json:"campaign_id"`
	Executed   []string  `json:"executed_actions"`
	Failed     []string  `json:"failed_actions"`
	Status     string    `json:"status"`
	ExecutedAt time.Time `json:"executed_at"`
}
