package services_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/SeaCloudHub/enquiry/adapters/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCsvToEntities(t *testing.T) {
	input := "id,name\n123456, Customer without transaction\n234567,Customer with 1 transaction\n"

	entities, err := services.NewCSVService().CsvToEntities(strings.NewReader(input), func(record []string) (interface{}, error) {
		return strconv.ParseUint(record[0], 10, 64)
	})

	require.NoError(t, err)
	assert.Equal(t, []interface{}{uint64(123456), uint64(234567)}, entities)
}

func TestCsvToEntitiesMapperError(t *testing.T) {
	input := "id\n1\nnot-a-number\n"

	_, err := services.NewCSVService().CsvToEntities(strings.NewReader(input), func(record []string) (interface{}, error) {
		return strconv.ParseUint(record[0], 10, 64)
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestCsvToEntitiesEmpty(t *testing.T) {
	_, err := services.NewCSVService().CsvToEntities(strings.NewReader(""), func(record []string) (interface{}, error) {
		return nil, nil
	})

	assert.Error(t, err)
}
