package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"wordpractice/internal/models"
)

// Required column names. Matching is exact and case-sensitive.
var requiredColumns = []string{"Word", "Meaning", "Sentence", "Translation"}

// setColumn is the optional grouping column.
const setColumn = "Set"

const fetchTimeout = 15 * time.Second

// SchemaError reports required columns missing from the dataset header.
// It is fatal to the view that triggered the load: nothing downstream
// runs on a dataset with an incomplete schema.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// Load fetches and parses the tabular dataset. Source is an http(s) URL
// or a local file path. The second return reports whether the optional
// Set column was present.
func Load(ctx context.Context, source string) ([]models.WordItem, bool, error) {
	rc, err := open(ctx, source)
	if err != nil {
		return nil, false, err
	}
	defer rc.Close()

	return Parse(rc)
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dataset: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code fetching dataset: %d", resp.StatusCode)
		}

		// Buffer the whole body before the timeout context is
		// canceled; the caller parses after this function returns.
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset: %w", err)
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}

	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	return file, nil
}

// Parse reads CSV rows into word items. The header row is validated
// before any row is materialized; a missing required column returns a
// *SchemaError and no partial result.
func Parse(r io.Reader) ([]models.WordItem, bool, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, false, &SchemaError{Missing: requiredColumns}
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, false, &SchemaError{Missing: missing}
	}

	setIdx, hasSet := index[setColumn]

	var items []models.WordItem
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, fmt.Errorf("failed to parse dataset: %w", err)
		}

		item := models.WordItem{
			Word:        record[index["Word"]],
			Meaning:     record[index["Meaning"]],
			Sentence:    record[index["Sentence"]],
			Translation: record[index["Translation"]],
		}
		if hasSet {
			item.Set = record[setIdx]
		}
		items = append(items, item)
	}

	return items, hasSet, nil
}
