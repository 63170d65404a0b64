package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-copilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-copilot-api/internal/domain"
)

const performanceSnapshotsTable = "account_performance"

type PerformanceSnapshotRepository interface {
	SaveOrUpdateSnapshot(snapshot *domain.PerformanceSnapshot) error
	ListByAccountID(accountID string, limit int) ([]*domain.PerformanceSnapshot, error)
}

type performanceSnapshotRepository struct {
	conn *postgres.Connection
}

func NewPerformanceSnapshotRepository(conn *postgres.Connection) PerformanceSnapshotRepository {
	return &performanceSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdateSnapshot insere o snapshot do dia ou atualiza se já existir
// para o par (account_id, date)
func (r *performanceSnapshotRepository) SaveOrUpdateSnapshot(snapshot *domain.PerformanceSnapshot) error {
	queryBuilder := squirrel.
		Insert(performanceSnapshotsTable).
		Columns(
			"account_id", "date", "total_campaigns", "active_campaigns",
			"total_spend", "total_impressions", "total_clicks", "avg_ctr", "avg_cpc",
		).
		Values(
			snapshot.AccountID, snapshot.Date, snapshot.TotalCampaigns, snapshot.ActiveCampaigns,
			snapshot.TotalSpend, snapshot.TotalImpressions, snapshot.TotalClicks, snapshot.AvgCTR, snapshot.AvgCPC,
		).
		Suffix(`ON CONFLICT (account_id, date) DO UPDATE SET
			total_campaigns = EXCLUDED.total_campaigns,
			active_campaigns = EXCLUDED.active_campaigns,
			total_spend = EXCLUDED.total_spend,
			total_impressions = EXCLUDED.total_impressions,
			total_clicks = EXCLUDED.total_clicks,
			avg_ctr = EXCLUDED.avg_ctr,
			avg_cpc = EXCLUDED.avg_cpc,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(snapshotSQL, snapshotArgs...)
	return err
}

func (r *performanceSnapshotRepository) ListByAccountID(accountID string, limit int) ([]*domain.PerformanceSnapshot, error) {
	queryBuilder := squirrel.
		Select(
			"id", "account_id", "date", "total_campaigns", "active_campaigns",
			"total_spend", "total_impressions", "total_clicks", "avg_ctr", "avg_cpc",
			"created_at", "updated_at",
		).
		From(performanceSnapshotsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("date DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(snapshotSQL, snapshotArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]*domain.PerformanceSnapshot, 0)
	for rows.Next() {
		var snapshot domain.PerformanceSnapshot
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.AccountID,
			&snapshot.Date,
			&snapshot.TotalCampaigns,
			&snapshot.ActiveCampaigns,
			&snapshot.TotalSpend,
			&snapshot.TotalImpressions,
			&snapshot.TotalClicks,
			&snapshot.AvgCTR,
			&snapshot.AvgCPC,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	return snapshots, rows.Err()
}
