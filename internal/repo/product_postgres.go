package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"estoque-api/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) ListByOwner(ownerID int) ([]models.Product, error) {
	query := `SELECT id, owner_id, name, description, quantity, cost_value, sale_value, created_at
		FROM products WHERE owner_id = $1 ORDER BY created_at DESC, id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &description, &p.Quantity,
			&p.CostValue, &p.SaleValue, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Description = description.String
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (id, owner_id, name, description, quantity, cost_value, sale_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	p.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, query, p.ID, p.OwnerID, p.Name, nullable(p.Description),
		p.Quantity, p.CostValue, p.SaleValue).Scan(&p.CreatedAt)
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	query := `UPDATE products SET name = $1, description = $2, quantity = $3, cost_value = $4, sale_value = $5
		WHERE id = $6 AND owner_id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.Name, nullable(p.Description), p.Quantity,
		p.CostValue, p.SaleValue, p.ID, p.OwnerID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (r *PostgresProductRepository) Delete(id string, ownerID int) error {
	query := `DELETE FROM products WHERE id = $1 AND owner_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
