package sqlc

import (
	"context"
	"net"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sqlc-dev/pqtype"
)

func testServerIp() pqtype.Inet {
	return pqtype.Inet{
		IPNet: net.IPNet{IP: net.IPv4(10, 0, 0, 7), Mask: net.CIDRMask(32, 32)},
		Valid: true,
	}
}

func TestAnalyticsIncrementCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	dbManager := NewDbManager(New(db))
	serverIp := testServerIp()
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO fleet_server_analytics`).
		WithArgs(serverIp).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := dbManager.Analytics.IncrementFleetsCreatedCount(ctx, serverIp); err != nil {
		t.Fatalf("failed to increment fleets created: %v", err)
	}

	mock.ExpectExec(`INSERT INTO fleet_server_analytics`).
		WithArgs(serverIp).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := dbManager.Analytics.IncrementShipsPlacedCount(ctx, serverIp); err != nil {
		t.Fatalf("failed to increment ships placed: %v", err)
	}

	mock.ExpectExec(`INSERT INTO fleet_server_analytics`).
		WithArgs(serverIp).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := dbManager.Analytics.IncrementShipsRotatedCount(ctx, serverIp); err != nil {
		t.Fatalf("failed to increment ships rotated: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyticsGetCounts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	dbManager := NewDbManager(New(db))
	serverIp := testServerIp()
	ctx := context.Background()

	mock.ExpectQuery(`SELECT fleets_created FROM fleet_server_analytics WHERE server_ip = \$1`).
		WithArgs(serverIp).
		WillReturnRows(sqlmock.NewRows([]string{"fleets_created"}).AddRow(3))

	fleetsCreated, err := dbManager.Analytics.GetFleetsCreatedCount(ctx, serverIp)
	if err != nil {
		t.Fatalf("failed to fetch fleets created: %v", err)
	}
	if fleetsCreated != 3 {
		t.Fatalf("expected fleets created: 3\tgot: %d", fleetsCreated)
	}

	mock.ExpectQuery(`SELECT ships_rotated FROM fleet_server_analytics WHERE server_ip = \$1`).
		WithArgs(serverIp).
		WillReturnRows(sqlmock.NewRows([]string{"ships_rotated"}).AddRow(12))

	shipsRotated, err := dbManager.Analytics.GetShipsRotatedCount(ctx, serverIp)
	if err != nil {
		t.Fatalf("failed to fetch ships rotated: %v", err)
	}
	if shipsRotated != 12 {
		t.Fatalf("expected ships rotated: 12\tgot: %d", shipsRotated)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
