package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sync"
)

var (
	csvServiceInstance *csvService
	once               sync.Once
)

type csvService struct{}

func NewCSVService() *csvService {
	once.Do(func() {
		csvServiceInstance = &csvService{}
	})
	return csvServiceInstance
}

// CsvToEntities maps every record after the header line.
func (c *csvService) CsvToEntities(r io.Reader,
	entityMapper func(record []string) (interface{}, error)) ([]interface{}, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true

	// Skip header
	_, err := csvReader.Read()
	if err != nil {
		return nil, err
	}

	var entityList []interface{}
	for line := 2; ; line++ {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		entity, err := entityMapper(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entityList = append(entityList, entity)
	}

	return entityList, nil
}
