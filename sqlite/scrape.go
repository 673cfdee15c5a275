package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pkoscik/tabtalk"
)

// Compile-time interface verification.
var _ tabtalk.ScrapeService = (*ScrapeService)(nil)

// ScrapeService implements tabtalk.ScrapeService using SQLite.
// Column names and row cells are stored as JSON arrays of strings.
type ScrapeService struct {
	db *DB
}

// NewScrapeService creates a new ScrapeService.
func NewScrapeService(db *DB) *ScrapeService {
	return &ScrapeService{db: db}
}

// hashTable computes the xxHash of a table's content and returns it as a
// hex string. Cells are separated so that shifting a value between cells
// changes the hash.
func hashTable(t *tabtalk.Table) string {
	h := xxhash.New()
	for _, col := range t.Columns() {
		_, _ = h.WriteString(col)
		_, _ = h.WriteString("\x1f")
	}
	for _, row := range t.Rows() {
		for _, cell := range row {
			_, _ = h.WriteString(cell)
			_, _ = h.WriteString("\x1f")
		}
		_, _ = h.WriteString("\x1e")
	}

	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h.Sum64())
	return hex.EncodeToString(b[:])
}

// CreateScrape archives a new scrape. Assigns ID, ContentHash, and
// FetchedAt on the passed scrape.
func (s *ScrapeService) CreateScrape(ctx context.Context, scrape *tabtalk.Scrape) error {
	if err := scrape.Validate(); err != nil {
		return err
	}

	scrape.ID = uuid.New().String()
	scrape.FetchedAt = time.Now().UTC()
	scrape.ContentHash = hashTable(scrape.Table)

	columns, err := json.Marshal(scrape.Table.Columns())
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO scrapes (id, source_url, columns, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
	`, scrape.ID, scrape.SourceURL, string(columns), scrape.ContentHash,
		scrape.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, row := range scrape.Table.Rows() {
		cells, err := json.Marshal(row)
		if err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO scrape_rows (scrape_id, position, cells)
			VALUES (?, ?, ?)
		`, scrape.ID, i, string(cells))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindScrapeByID retrieves a scrape with its full table.
func (s *ScrapeService) FindScrapeByID(ctx context.Context, id string) (*tabtalk.Scrape, error) {
	var scrape tabtalk.Scrape
	var columnsJSON, fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, columns, content_hash, fetched_at
		FROM scrapes
		WHERE id = ?
	`, id).Scan(&scrape.ID, &scrape.SourceURL, &columnsJSON, &scrape.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, tabtalk.Errorf(tabtalk.ENOTFOUND, "scrape not found")
	}
	if err != nil {
		return nil, err
	}

	scrape.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	scrape.Table, err = s.loadTable(ctx, scrape.ID, columnsJSON)
	if err != nil {
		return nil, err
	}

	return &scrape, nil
}

// FindScrapes retrieves scrapes matching the filter, newest first, with
// their full tables.
func (s *ScrapeService) FindScrapes(ctx context.Context, filter tabtalk.ScrapeFilter) ([]*tabtalk.Scrape, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, columns, content_hash, fetched_at FROM scrapes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type record struct {
		scrape      *tabtalk.Scrape
		columnsJSON string
	}
	var records []record

	for rows.Next() {
		var scrape tabtalk.Scrape
		var columnsJSON, fetchedAt string

		if err := rows.Scan(&scrape.ID, &scrape.SourceURL, &columnsJSON, &scrape.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		scrape.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		records = append(records, record{scrape: &scrape, columnsJSON: columnsJSON})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Tables are loaded after the scan loop: the single-connection DB can't
	// run nested queries while rows are open.
	scrapes := make([]*tabtalk.Scrape, 0, len(records))
	for _, r := range records {
		r.scrape.Table, err = s.loadTable(ctx, r.scrape.ID, r.columnsJSON)
		if err != nil {
			return nil, err
		}
		scrapes = append(scrapes, r.scrape)
	}

	return scrapes, nil
}

// DeleteScrape permanently removes a scrape; its rows cascade.
func (s *ScrapeService) DeleteScrape(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM scrapes WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return tabtalk.Errorf(tabtalk.ENOTFOUND, "scrape not found")
	}
	return nil
}

// loadTable reassembles a scrape's table from its stored rows.
func (s *ScrapeService) loadTable(ctx context.Context, scrapeID, columnsJSON string) (*tabtalk.Table, error) {
	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return nil, fmt.Errorf("failed to decode columns: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT cells FROM scrape_rows
		WHERE scrape_id = ?
		ORDER BY position ASC
	`, scrapeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var data [][]string
	for rows.Next() {
		var cellsJSON string
		if err := rows.Scan(&cellsJSON); err != nil {
			return nil, err
		}
		var cells []string
		if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
			return nil, fmt.Errorf("failed to decode row cells: %w", err)
		}
		data = append(data, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tabtalk.NewTable(columns, data)
}
