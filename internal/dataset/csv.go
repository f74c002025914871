// Package dataset provides the bundled seed orders and CSV loading for
// the orders table.
package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/salesq/salesq/internal/errors"
	"github.com/salesq/salesq/internal/schema"
	"github.com/salesq/salesq/internal/storage"
)

// requiredColumns are the CSV headers a dataset file must provide. The
// derived month and year columns are computed at insert time and must not
// appear in the file.
var requiredColumns = []string{"id", "customer", "region", "category", "amount", "quantity", "order_date"}

// LoadCSVFile reads orders from a CSV file with a header row.
func LoadCSVFile(path string, reg *schema.Registry) ([]storage.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeFileSystem, "failed to open CSV file")
	}

	defer f.Close()

	return ParseCSV(f, reg)
}

// ParseCSV reads orders from CSV data with a header row. Column order is
// free; headers are matched case-insensitively. Categorical values are
// canonicalized against the registry and unknown values are rejected.
func ParseCSV(r io.Reader, reg *schema.Registry) ([]storage.Order, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.NewDatasetError("failed to read CSV header", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, errors.Newf(errors.ErrTypeDataset, "CSV is missing required column %q", col).
				WithSuggestion("Expected header: " + strings.Join(requiredColumns, ","))
		}
	}

	var orders []storage.Order

	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		line++

		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTypeDataset, "failed to read CSV line %d", line)
		}

		order, err := parseRow(row, index, reg, line)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	if len(orders) == 0 {
		return nil, errors.New(errors.ErrTypeDataset, "CSV contains no data rows")
	}

	return orders, nil
}

func parseRow(row []string, index map[string]int, reg *schema.Registry, line int) (storage.Order, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}

	var order storage.Order

	id, err := strconv.Atoi(field("id"))
	if err != nil {
		return order, errors.Newf(errors.ErrTypeDataset, "line %d: invalid id %q", line, field("id"))
	}

	amount, err := strconv.ParseFloat(field("amount"), 64)
	if err != nil {
		return order, errors.Newf(errors.ErrTypeDataset, "line %d: invalid amount %q", line, field("amount"))
	}

	quantity, err := strconv.Atoi(field("quantity"))
	if err != nil {
		return order, errors.Newf(errors.ErrTypeDataset, "line %d: invalid quantity %q", line, field("quantity"))
	}

	date, err := time.Parse("2006-01-02", field("order_date"))
	if err != nil {
		return order, errors.Newf(errors.ErrTypeDataset, "line %d: invalid order_date %q (want YYYY-MM-DD)", line, field("order_date"))
	}

	region, ok := reg.CanonicalValue("region", field("region"))
	if !ok {
		return order, errors.Newf(errors.ErrTypeDataset, "line %d: unknown region %q", line, field("region"))
	}

	category, ok := reg.CanonicalValue("category", field("category"))
	if !ok {
		return order, errors.Newf(errors.ErrTypeDataset, "line %d: unknown category %q", line, field("category"))
	}

	return storage.Order{
		ID:       id,
		Customer: field("customer"),
		Region:   region,
		Category: category,
		Amount:   amount,
		Quantity: quantity,
		Date:     date,
	}, nil
}
