package main

import (
	"time"

	"backend/config"
	"backend/repositories"
	"backend/routes"
	"backend/services"
	"backend/utils"

	"github.com/apex/log"
)

// startSweeper is the scheduler collaborator: plain tickers, no cron
// parsing. A pass that overruns simply delays the next tick; passes never
// overlap.
func startSweeper() {
	go func() {
		hourly := time.NewTicker(time.Hour)
		daily := time.NewTicker(24 * time.Hour)
		defer hourly.Stop()
		defer daily.Stop()

		for {
			select {
			case <-hourly.C:
				result := services.Sweeper.SweepExpired(time.Now())
				for _, err := range result.Errors {
					log.WithError(err).Error("sweep error")
				}
			case <-daily.C:
				if _, err := services.Sweeper.CleanupOld(time.Now()); err != nil {
					log.WithError(err).Error("cleanup report failed")
				}
			}
		}
	}()
}

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitRekognition()
	services.Init(repositories.NewStores(config.DB))
	startSweeper()

	r := routes.SetupRouter()
	r.Run(":8080")
}
