package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementFleetsCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementFleetsCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementShipsPlacedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementShipsPlacedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementShipsRotatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementShipsRotatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetFleetsCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetFleetsCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetShipsPlacedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetShipsPlacedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetShipsRotatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetShipsRotatedCount(ctx, serverIpNet)
}
