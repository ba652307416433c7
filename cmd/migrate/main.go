package main

import (
	"flag"
	"log"

	"github.com/SeaCloudHub/enquiry/adapters/postgrestore"
	"github.com/SeaCloudHub/enquiry/pkg/config"
	"github.com/SeaCloudHub/enquiry/pkg/logger"
	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	var (
		down = flag.Bool("down", false, "roll back instead of applying migrations")
		max  = flag.Int("max", 0, "maximum number of migrations to run, 0 runs all")
	)
	flag.Parse()

	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatalf("cannot connect to db: %v", err)
	}
	defer db.Close()

	dir := migrate.Up
	if *down {
		dir = migrate.Down
	}

	n, err := postgrestore.Migrate(db.DB, dir, *max)
	if err != nil {
		applog.Fatalf("cannot run migrations: %v", err)
	}

	applog.Infof("applied %d migrations", n)
}
