package loot

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/LootBot_Go/internal/domain"
)

// Required header columns per source file
var (
	requiredBaseColumns = []string{"item_id", "name", "category", "subtype"}
	requiredLootColumns = []string{"item_id", "rarity"}
)

// tagColumnCandidates are the header names accepted for the optional tags
// column, checked in order. The base file wins when both files carry one.
var tagColumnCandidates = []string{"tags", "tag", "item_tags"}

// Catalog is an immutable snapshot of the joined loot data. It is rebuilt
// wholesale on every load and never mutated in place.
type Catalog struct {
	Items    []domain.Item
	HasTags  bool
	Dropped  int // loot rows excluded by the join (no base row, or blank item_id)
	LoadedAt time.Time
}

// Len returns the number of items in the snapshot. Safe on a nil catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// Loader reads the two CSV sources and produces Catalog snapshots.
type Loader struct {
	BasePath string
	LootPath string
}

// NewLoader creates a loader for the given base and loot file paths.
func NewLoader(basePath, lootPath string) *Loader {
	return &Loader{BasePath: basePath, LootPath: lootPath}
}

// Load reads both files, validates required columns, and inner-joins loot
// rows against base rows on item_id, preserving loot-file row order.
//
// Loot rows without a matching base row are dropped and counted rather than
// failing the load; the caller decides whether to surface the count.
// Calling Load twice with unchanged files yields identical item sequences.
func (l *Loader) Load() (*Catalog, error) {
	baseRows, err := readRows(l.BasePath)
	if err != nil {
		return nil, err
	}
	lootRows, err := readRows(l.LootPath)
	if err != nil {
		return nil, err
	}

	if err := validateColumns(l.BasePath, baseRows.header, requiredBaseColumns); err != nil {
		return nil, err
	}
	if err := validateColumns(l.LootPath, lootRows.header, requiredLootColumns); err != nil {
		return nil, err
	}

	baseByID := make(map[string]map[string]string, len(baseRows.rows))
	for _, row := range baseRows.rows {
		if id := row["item_id"]; id != "" {
			baseByID[id] = row
		}
	}

	tagsColumn, tagsInBase := findTagsColumn(baseRows.header, lootRows.header)

	items := make([]domain.Item, 0, len(lootRows.rows))
	dropped := 0
	for _, row := range lootRows.rows {
		id := row["item_id"]
		base, ok := baseByID[id]
		if id == "" || !ok {
			dropped++
			continue
		}

		var rawTags string
		if tagsColumn != "" {
			if tagsInBase {
				rawTags = base[tagsColumn]
			} else {
				rawTags = row[tagsColumn]
			}
		}

		items = append(items, domain.Item{
			ID:       id,
			Name:     base["name"],
			Category: base["category"],
			Subtype:  base["subtype"],
			Rarity:   domain.Rarity(row["rarity"]),
			Tags:     SplitTags(rawTags),
		})
	}

	if dropped > 0 {
		slog.Warn("Dropped loot rows without a matching base row",
			"file", filepath.Base(l.LootPath), "count", dropped)
	}

	return &Catalog{
		Items:    items,
		HasTags:  tagsColumn != "",
		Dropped:  dropped,
		LoadedAt: time.Now(),
	}, nil
}

// table holds a parsed CSV: the header set and one map per data row.
type table struct {
	header map[string]bool
	rows   []map[string]string
}

func readRows(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.MissingFileError{Path: path}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are padded below, not fatal

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	columns := make([]string, len(header))
	headerSet := make(map[string]bool, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff") // UTF-8 BOM
		}
		col = strings.TrimSpace(col)
		columns[i] = col
		headerSet[col] = true
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return &table{header: headerSet, rows: rows}, nil
}

func validateColumns(path string, header map[string]bool, required []string) error {
	var missing []string
	for _, col := range required {
		if !header[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &domain.MissingColumnError{File: filepath.Base(path), Columns: missing}
	}
	return nil
}

// findTagsColumn returns the detected tags column name and whether it lives
// in the base file. Empty name means the data has no tags column.
func findTagsColumn(baseHeader, lootHeader map[string]bool) (string, bool) {
	for _, col := range tagColumnCandidates {
		if baseHeader[col] {
			return col, true
		}
		if lootHeader[col] {
			return col, false
		}
	}
	return "", false
}

// SplitTags parses a comma-separated tag list, trimming whitespace and
// lower-casing each entry. Empty input yields nil.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
