package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// CustomQueryRepository executes builder-assembled statements. Columns are
// only known at request time, so rows are scanned dynamically.
type CustomQueryRepository interface {
	Run(query string, args []interface{}) ([]map[string]interface{}, error)
}

type customQueryRepository struct {
	db *gorm.DB
}

func NewCustomQueryRepository(db *gorm.DB) CustomQueryRepository {
	return &customQueryRepository{db: db}
}

func (r *customQueryRepository) Run(query string, args []interface{}) ([]map[string]interface{}, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	rows, err := sqlDB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run custom query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	results := make([]map[string]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan custom query row: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			// The driver hands numerics back as raw bytes; keep them as text.
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
			} else {
				row[column] = values[i]
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read custom query rows: %w", err)
	}

	return results, nil
}
