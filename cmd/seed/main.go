package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SeaCloudHub/enquiry/adapters/event"
	"github.com/SeaCloudHub/enquiry/adapters/event/listeners"
	"github.com/SeaCloudHub/enquiry/adapters/postgrestore"
	"github.com/SeaCloudHub/enquiry/adapters/services"
	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/SeaCloudHub/enquiry/internal"
	"github.com/SeaCloudHub/enquiry/pkg/config"
	"github.com/SeaCloudHub/enquiry/pkg/logger"
	"github.com/shopspring/decimal"
)

const columns = 8

// row is one line of the seed file: a customer, and optionally one of their
// transactions.
type row struct {
	customer    customer.NewCustomer
	transaction *customer.NewTransaction
}

func main() {
	file := flag.String("file", "deploy/seed/customers.csv", "seed file")
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

	gdb, err := postgrestore.NewGorm(db, cfg.Debug)
	if err != nil {
		applog.Fatal(err)
	}

	f, err := os.Open(*file)
	if err != nil {
		applog.Fatalf("cannot open seed file: %v", err)
	}
	defer f.Close()

	customers, err := loadSeed(services.NewCSVService(), f)
	if err != nil {
		applog.Fatalf("cannot read seed file: %v", err)
	}

	dispatcher := event.NewEventDispatcher()
	for _, name := range customer.EventNames {
		dispatcher.Register(name, listeners.NewLoggingListener(applog).EventHandler)
	}

	customerService := services.NewCustomerService(
		postgrestore.NewCommitter(gdb), dispatcher, postgrestore.NewCustomerStore(db))

	ctx := context.Background()
	for _, nc := range customers {
		if _, err := customerService.CreateCustomer(ctx, nc); err != nil {
			if errors.Is(err, customer.ErrCustomerAlreadyExists) {
				applog.Infof("customer %d already exists, skipped", nc.ID)
				continue
			}

			applog.Fatalf("cannot create customer %d: %v", nc.ID, err)
		}

		applog.Infof("customer %d created with %d transactions", nc.ID, len(nc.Transactions))
	}
}

func loadSeed(csvService internal.CSVService, r io.Reader) ([]customer.NewCustomer, error) {
	records, err := csvService.CsvToEntities(r, parseRow)
	if err != nil {
		return nil, err
	}

	return group(records), nil
}

func parseRow(record []string) (interface{}, error) {
	if len(record) != columns {
		return nil, fmt.Errorf("expected %d columns, got %d", columns, len(record))
	}

	id, err := strconv.ParseUint(record[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("customer id: %w", err)
	}

	r := row{customer: customer.NewCustomer{
		ID:     id,
		Name:   record[1],
		Email:  record[2],
		Mobile: record[3],
	}}

	if strings.TrimSpace(record[4]) == "" {
		return r, nil
	}

	date, err := time.ParseInLocation(services.TransactionDateLayout, record[4], time.UTC)
	if err != nil {
		return nil, fmt.Errorf("transaction date: %w", err)
	}

	amount, err := decimal.NewFromString(record[5])
	if err != nil {
		return nil, fmt.Errorf("amount: %w", err)
	}

	status := customer.Status(record[7])
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown status %q", record[7])
	}

	r.transaction = &customer.NewTransaction{
		Date:         date,
		Amount:       amount,
		CurrencyCode: record[6],
		Status:       status,
	}

	return r, nil
}

// group merges the rows of each customer in first-seen order.
func group(records []interface{}) []customer.NewCustomer {
	var (
		result []customer.NewCustomer
		index  = make(map[uint64]int)
	)

	for _, rec := range records {
		r := rec.(row)

		i, ok := index[r.customer.ID]
		if !ok {
			i = len(result)
			index[r.customer.ID] = i
			result = append(result, r.customer)
		}

		if r.transaction != nil {
			result[i].Transactions = append(result[i].Transactions, *r.transaction)
		}
	}

	return result
}
