package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresSource reads the catalog from a table that mirrors the CSV columns
type PostgresSource struct {
	db    *sqlx.DB
	table string
}

// NewPostgresSource connects to PostgreSQL and reads rows from table
func NewPostgresSource(dsn, table string, maxConn, maxIdleConn int) (*PostgresSource, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewPostgresSourceFromDB(db, table), nil
}

// NewPostgresSourceFromDB wraps an existing connection
func NewPostgresSourceFromDB(db *sqlx.DB, table string) *PostgresSource {
	if table == "" {
		table = "listings"
	}
	return &PostgresSource{db: db, table: table}
}

func (s *PostgresSource) Name() string {
	return "postgres:" + s.table
}

// Close closes the database connection
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

// Rows selects every column of the catalog table and stringifies each cell
// so the same coercion table serves CSV and database input.
func (s *PostgresSource) Rows(ctx context.Context) ([]map[string]string, error) {
	query := fmt.Sprintf("SELECT * FROM %s", pq.QuoteIdentifier(s.table))

	result, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer result.Close()

	columns, err := result.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog columns: %w", err)
	}
	if !hasColumn(columns, "listing_id") {
		return nil, ErrMissingIDColumn
	}

	var rows []map[string]string
	for result.Next() {
		values := make(map[string]interface{})
		if err := result.MapScan(values); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		row := make(map[string]string, len(values))
		for column, value := range values {
			row[strings.ToLower(column)] = cellString(value)
		}
		if photos, ok := row["photos"]; ok {
			row["photos"] = arrayToJoined(photos)
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog rows: %w", err)
	}

	return rows, nil
}

func hasColumn(columns []string, name string) bool {
	for _, column := range columns {
		if strings.EqualFold(column, name) {
			return true
		}
	}
	return false
}

func cellString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// arrayToJoined turns a text[] literal such as {a,b} into "a|b"
func arrayToJoined(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return raw
	}
	var urls pq.StringArray
	if err := urls.Scan(trimmed); err != nil {
		return raw
	}
	return strings.Join(urls, "|")
}
