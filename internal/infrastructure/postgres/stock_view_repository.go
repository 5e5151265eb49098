package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockpilot-api/internal/domain/entity"
	"github.com/jhoicas/stockpilot-api/internal/domain/repository"
)

var _ repository.StockViewRepository = (*StockViewRepo)(nil)

// StockViewRepo adaptador de la vista de stock agregado: products + categories
// + suppliers + SUM(quantity) del ledger, componiendo filtros, orden y límite
// en una sola consulta. Solo lectura.
type StockViewRepo struct {
	q Querier
}

// NewStockViewRepository construye el adaptador de la vista. Pasar pool o tx (Querier).
func NewStockViewRepository(q Querier) *StockViewRepo {
	return &StockViewRepo{q: q}
}

// stockBaseQuery vista base. INNER JOIN con categories (todo producto tiene
// categoría), LEFT JOIN con suppliers (opcional) y con la suma del ledger:
// un producto sin movimientos existe con stock 0.
const stockBaseQuery = `
	SELECT p.id, p.tenant_id, p.sku, p.name, p.description, p.category_id, p.supplier_id,
		p.unit_price, p.cost_price, p.reorder_point, p.reorder_qty, p.is_active,
		p.created_at, p.updated_at,
		c.name, s.name, COALESCE(m.stock_level, 0)
	FROM products p
	INNER JOIN categories c ON c.id = p.category_id
	LEFT JOIN suppliers s ON s.id = p.supplier_id
	LEFT JOIN (
		SELECT product_id, SUM(quantity) AS stock_level
		FROM stock_movements
		WHERE tenant_id = $1
		GROUP BY product_id
	) m ON m.product_id = p.id
	WHERE p.tenant_id = $1`

// ListStock devuelve filas de la vista con los filtros del StockFilter.
// SortField y SortOrder vienen ya validados contra lista blanca en el resolver;
// aquí se mapean a columnas fijas, nunca se interpola texto del usuario en el SQL.
func (r *StockViewRepo) ListStock(ctx context.Context, tenantID string, f repository.StockFilter) ([]repository.StockRow, error) {
	var sb strings.Builder
	sb.WriteString(stockBaseQuery)
	args := []any{tenantID}

	if f.Category != "" {
		args = append(args, "%"+f.Category+"%")
		fmt.Fprintf(&sb, " AND c.name ILIKE $%d", len(args))
	}
	if f.Supplier != "" {
		args = append(args, "%"+f.Supplier+"%")
		fmt.Fprintf(&sb, " AND s.name ILIKE $%d", len(args))
	}
	if f.Name != "" {
		switch f.NameMode {
		case repository.MatchExact:
			args = append(args, f.Name)
			fmt.Fprintf(&sb, " AND LOWER(p.name) = LOWER($%d)", len(args))
		case repository.MatchPrefix:
			args = append(args, f.Name+"%")
			fmt.Fprintf(&sb, " AND p.name ILIKE $%d", len(args))
		default:
			args = append(args, "%"+f.Name+"%")
			fmt.Fprintf(&sb, " AND p.name ILIKE $%d", len(args))
		}
	}

	if f.SortField != "" {
		column := "COALESCE(m.stock_level, 0)"
		if f.SortField == repository.SortByPrice {
			column = "p.unit_price"
		}
		direction := "ASC"
		if f.SortOrder == repository.OrderDesc {
			direction = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s NULLS LAST", column, direction)
	} else {
		sb.WriteString(" ORDER BY p.name")
	}

	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var result []repository.StockRow
	for rows.Next() {
		var row repository.StockRow
		p := &row.Product
		if err := rows.Scan(
			&p.ID, &p.TenantID, &p.SKU, &p.Name, &p.Description, &p.CategoryID, &p.SupplierID,
			&p.UnitPrice, &p.CostPrice, &p.ReorderPoint, &p.ReorderQty, &p.IsActive,
			&p.CreatedAt, &p.UpdatedAt,
			&row.CategoryName, &row.SupplierName, &row.StockLevel,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountProducts total de productos del tenant.
func (r *StockViewRepo) CountProducts(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE tenant_id = $1`, tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountProductsByCategory conteo por categoría, ordenado por nombre para
// resultados deterministas.
func (r *StockViewRepo) CountProductsByCategory(ctx context.Context, tenantID string) ([]repository.CategoryCount, error) {
	query := `
		SELECT c.name, COUNT(p.id)
		FROM products p
		INNER JOIN categories c ON c.id = p.category_id
		WHERE p.tenant_id = $1
		GROUP BY c.name
		ORDER BY c.name`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("count products by category: %w", err)
	}
	defer rows.Close()

	var counts []repository.CategoryCount
	for rows.Next() {
		var c repository.CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ListCostedProducts productos con precio de venta Y costo definidos.
func (r *StockViewRepo) ListCostedProducts(ctx context.Context, tenantID string) ([]entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1 AND unit_price IS NOT NULL AND cost_price IS NOT NULL
		ORDER BY name`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list costed products: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// ListSuppliers proveedores del tenant, sin duplicados. Con filtro de
// categoría se restringe a los que tienen al menos un producto en una
// categoría cuyo nombre contiene el filtro.
func (r *StockViewRepo) ListSuppliers(ctx context.Context, tenantID, categoryFilter string, limit int) ([]entity.Supplier, error) {
	var query string
	args := []any{tenantID}
	if categoryFilter != "" {
		query = `
			SELECT DISTINCT s.id, s.tenant_id, s.name, s.contact_email, s.contact_phone, s.lead_time_days, s.is_active, s.created_at
			FROM suppliers s
			INNER JOIN products p ON p.supplier_id = s.id
			INNER JOIN categories c ON c.id = p.category_id
			WHERE s.tenant_id = $1 AND c.name ILIKE $2
			ORDER BY s.name
			LIMIT $3`
		args = append(args, "%"+categoryFilter+"%", limit)
	} else {
		query = `
			SELECT id, tenant_id, name, contact_email, contact_phone, lead_time_days, is_active, created_at
			FROM suppliers
			WHERE tenant_id = $1
			ORDER BY name
			LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.TenantID, &s.Name, &s.ContactEmail, &s.ContactPhone,
			&s.LeadTimeDays, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

// TopSuppliersByProductCount proveedores con más productos, descendente.
func (r *StockViewRepo) TopSuppliersByProductCount(ctx context.Context, tenantID string, limit int) ([]repository.SupplierCount, error) {
	query := `
		SELECT s.name, COUNT(p.id) AS product_count
		FROM suppliers s
		INNER JOIN products p ON p.supplier_id = s.id
		WHERE s.tenant_id = $1
		GROUP BY s.name
		ORDER BY product_count DESC, s.name
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("top suppliers: %w", err)
	}
	defer rows.Close()

	var counts []repository.SupplierCount
	for rows.Next() {
		var c repository.SupplierCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ListPrices precios unitarios no nulos del tenant.
func (r *StockViewRepo) ListPrices(ctx context.Context, tenantID string) ([]decimal.Decimal, error) {
	query := `SELECT unit_price FROM products WHERE tenant_id = $1 AND unit_price IS NOT NULL`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer rows.Close()

	var prices []decimal.Decimal
	for rows.Next() {
		var p decimal.Decimal
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}
