package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"Apar/CronJobs"
	"Apar/FiberConfig"
	"Apar/Models"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment")
	}

	Models.Connect()

	// Reconciliation is opt-in; set RECONCILE_CRON (e.g. "0 2 * * *") to
	// enable the nightly balance check.
	if spec := os.Getenv("RECONCILE_CRON"); spec != "" {
		reconciler := CronJobs.NewReconciler(Models.DB, spec)
		if err := reconciler.Start(); err != nil {
			log.Fatal("Failed to start reconciler:", err)
		}
	}

	FiberConfig.FiberConfig()
}
