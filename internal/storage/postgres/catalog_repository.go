package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) Add(product domain.Product) error {
	ctx, cancel := opContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, price_minor, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		product.ID, product.Name, product.Description, product.PriceMinor,
		product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product %s", domain.ErrAlreadyExists, product.ID)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *productRepository) Save(product domain.Product) error {
	ctx, cancel := opContext()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price_minor = $3, is_active = $4, updated_at = $5
		WHERE id = $6
	`,
		product.Name, product.Description, product.PriceMinor,
		product.IsActive, product.UpdatedAt, product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return requireAffected(res, fmt.Errorf("%w: product %s", domain.ErrProductNotFound, product.ID))
}

func (r *productRepository) GetByID(id string) (domain.Product, error) {
	ctx, cancel := opContext()
	defer cancel()

	var product domain.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price_minor, is_active, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.PriceMinor,
		&product.IsActive, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("%w: product %s", domain.ErrProductNotFound, id)
		}
		return domain.Product{}, fmt.Errorf("select product: %w", err)
	}
	return product, nil
}

func (r *productRepository) ListAll() ([]domain.Product, error) {
	ctx, cancel := opContext()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price_minor, is_active, created_at, updated_at
		FROM products
		ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID, &product.Name, &product.Description, &product.PriceMinor,
			&product.IsActive, &product.CreatedAt, &product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}
	return products, nil
}

func (r *productRepository) Remove(id string) error {
	ctx, cancel := opContext()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return requireAffected(res, fmt.Errorf("%w: product %s", domain.ErrProductNotFound, id))
}

type supplierRepository struct {
	db *sql.DB
}

// NewSupplierRepository создаёт PostgreSQL-реализацию SupplierRepository.
func NewSupplierRepository(store *Store) domain.SupplierRepository {
	return &supplierRepository{db: store.DB()}
}

func (r *supplierRepository) Add(supplier domain.Supplier) error {
	ctx, cancel := opContext()
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO suppliers (id, company_name, contact_email, phone, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		supplier.ID, supplier.CompanyName, supplier.ContactEmail, supplier.Phone,
		supplier.IsActive, supplier.CreatedAt, supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: supplier %s", domain.ErrAlreadyExists, supplier.ID)
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *supplierRepository) Save(supplier domain.Supplier) error {
	ctx, cancel := opContext()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE suppliers
		SET company_name = $1, contact_email = $2, phone = $3, is_active = $4, updated_at = $5
		WHERE id = $6
	`,
		supplier.CompanyName, supplier.ContactEmail, supplier.Phone,
		supplier.IsActive, supplier.UpdatedAt, supplier.ID,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return requireAffected(res, fmt.Errorf("%w: supplier %s", domain.ErrSupplierNotFound, supplier.ID))
}

func (r *supplierRepository) GetByID(id string) (domain.Supplier, error) {
	ctx, cancel := opContext()
	defer cancel()

	var supplier domain.Supplier
	err := r.db.QueryRowContext(ctx, `
		SELECT id, company_name, contact_email, phone, is_active, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`, id).Scan(
		&supplier.ID, &supplier.CompanyName, &supplier.ContactEmail, &supplier.Phone,
		&supplier.IsActive, &supplier.CreatedAt, &supplier.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Supplier{}, fmt.Errorf("%w: supplier %s", domain.ErrSupplierNotFound, id)
		}
		return domain.Supplier{}, fmt.Errorf("select supplier: %w", err)
	}
	return supplier, nil
}

func (r *supplierRepository) ListAll() ([]domain.Supplier, error) {
	ctx, cancel := opContext()
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, company_name, contact_email, phone, is_active, created_at, updated_at
		FROM suppliers
		ORDER BY company_name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := make([]domain.Supplier, 0)
	for rows.Next() {
		var supplier domain.Supplier
		if err := rows.Scan(
			&supplier.ID, &supplier.CompanyName, &supplier.ContactEmail, &supplier.Phone,
			&supplier.IsActive, &supplier.CreatedAt, &supplier.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier row: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate supplier rows: %w", err)
	}
	return suppliers, nil
}

func (r *supplierRepository) Remove(id string) error {
	ctx, cancel := opContext()
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return requireAffected(res, fmt.Errorf("%w: supplier %s", domain.ErrSupplierNotFound, id))
}

// requireAffected возвращает notFound, если запрос не затронул ни одной строки.
func requireAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

var (
	_ domain.ProductRepository  = (*productRepository)(nil)
	_ domain.SupplierRepository = (*supplierRepository)(nil)
)
