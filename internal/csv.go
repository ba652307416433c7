package internal

import "io"

type CSVService interface {
	CsvToEntities(r io.Reader,
		entityMapper func(record []string) (interface{}, error)) ([]interface{}, error)
}
