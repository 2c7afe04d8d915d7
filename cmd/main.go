package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/saeidalz13/armada-backend/api"
	"github.com/saeidalz13/armada-backend/db"
	"github.com/saeidalz13/armada-backend/db/sqlc"
	mc "github.com/saeidalz13/armada-backend/models/connection"
	mp "github.com/saeidalz13/armada-backend/models/placement"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		panic(err)
	}

	// Analytics is optional; without DATABASE_URL the server
	// runs with counters disabled.
	var querier sqlc.Querier
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		querier = sqlc.New(db.MustConnectToDb(psqlUrl))
	}

	sessionManager := mc.NewArmadaSessionManager()
	go sessionManager.CleanupPeriodically()

	fleetManager := mp.NewArmadaFleetManager()

	rp := api.NewRequestProcessor(sessionManager, fleetManager, querier)

	relayHub := api.NewRelayHub()
	go relayHub.Run()

	mux := http.NewServeMux()
	mux.Handle("GET /armada", rp)
	mux.Handle("GET /relay", relayHub)

	log.Printf("Listening to port %d\n", port)
	log.Fatalln(http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux))
}
