package importer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nautiq-backend/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads supplier catalog exports and inserts/updates catering
// products. Tags are pipe-separated; variants are a JSON array cell.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts one product per row. It returns the count
// imported and stops on the first malformed row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		product, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if product == nil {
			continue
		}
		if _, err := i.productRepo.Upsert(ctx, *product); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", product.Name, err)
		}
		imported++
	}
	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	name := pick(record, index, "name")
	if name == "" {
		return nil, nil
	}
	category := pick(record, index, "category")
	centStr := pick(record, index, "price_cents")
	if category == "" || centStr == "" {
		return nil, fmt.Errorf("product row %q missing category or price", name)
	}
	cents, err := strconv.ParseInt(centStr, 10, 64)
	if err != nil || cents < 0 {
		return nil, fmt.Errorf("product row %q has invalid price %q", name, centStr)
	}

	stock := 0
	if s := pick(record, index, "stock"); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("product row %q has invalid stock %q", name, s)
		}
	}

	var variants []domain.Variant
	if raw := pick(record, index, "variants"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &variants); err != nil {
			return nil, fmt.Errorf("product row %q has invalid variants: %w", name, err)
		}
	}

	var tags []string
	if raw := pick(record, index, "tags"); raw != "" {
		for _, tag := range strings.Split(raw, "|") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				tags = append(tags, trimmed)
			}
		}
	}

	return &domain.Product{
		Name:        name,
		Description: pick(record, index, "description"),
		Category:    category,
		ImageURL:    pick(record, index, "image_url"),
		PriceCents:  cents,
		Stock:       stock,
		IsActive:    !strings.EqualFold(pick(record, index, "inactive"), "true"),
		Tags:        tags,
		Variants:    variants,
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
