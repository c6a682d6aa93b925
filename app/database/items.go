package database

import (
	"database/sql"

	"github.com/prajaktarsawant/StudentPerformanceAnalysis-ML/app/models"
)

func CreateItem(db *sql.DB, in models.ItemCreate) (*models.Item, error) {
	item := &models.Item{Name: in.Name, Description: in.Description}
	query := `INSERT INTO items (name, description) VALUES ($1, $2)
		RETURNING id, created_at`
	err := db.QueryRow(query, in.Name, in.Description).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func GetItems(db *sql.DB, limit, offset int) ([]*models.Item, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at
		FROM items ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := db.Query(query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func GetItemByID(db *sql.DB, id int64) (*models.Item, error) {
	item := &models.Item{}
	query := `SELECT id, name, COALESCE(description, ''), created_at
		FROM items WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&item.ID, &item.Name, &item.Description, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}
