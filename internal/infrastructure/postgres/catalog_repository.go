package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mobile-inventory/internal/domain"
	"github.com/jhoicas/mobile-inventory/internal/domain/entity"
	"github.com/jhoicas/mobile-inventory/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo productos, materias primas y recetas.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Acepta pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

const selectProduct = `
	SELECT p.id, p.product_type_id, pt.name, COALESCE(p.product_variant_id, 0), COALESCE(pv.name, ''),
		p.size_id, s.label, p.size_unit_id, su.name,
		p.unit_price, p.srp_price, p.description, COALESCE(p.created_by, 0), p.created_at
	FROM products p
	JOIN product_types pt ON pt.id = p.product_type_id
	LEFT JOIN product_variants pv ON pv.id = p.product_variant_id
	JOIN sizes s ON s.id = p.size_id
	JOIN size_units su ON su.id = p.size_unit_id`

const selectRawMaterial = `
	SELECT m.id, m.name, m.size, m.unit, m.price_per_unit, COALESCE(m.created_by, 0), m.created_at
	FROM raw_materials m`

func productDest(p *entity.Product) []any {
	return []any{
		&p.ID, &p.TypeID, &p.TypeName, &p.VariantID, &p.VariantName,
		&p.SizeID, &p.SizeLabel, &p.UnitID, &p.UnitName,
		&p.UnitPrice, &p.SrpPrice, &p.Description, &p.CreatedBy, &p.CreatedAt,
	}
}

func rawMaterialDest(m *entity.RawMaterial) []any {
	return []any{&m.ID, &m.Name, &m.Size, &m.Unit, &m.PricePerUnit, &m.CreatedBy, &m.CreatedAt}
}

func (r *CatalogRepo) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, selectProduct+` WHERE p.id = $1`, id).Scan(productDest(&p)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *CatalogRepo) GetRawMaterial(ctx context.Context, id int64) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := r.q.QueryRow(ctx, selectRawMaterial+` WHERE m.id = $1`, id).Scan(rawMaterialDest(&m)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return &m, nil
}

// Labels una consulta por tipo de ítem con ANY($1).
func (r *CatalogRepo) Labels(ctx context.Context, refs []entity.ItemRef) (map[entity.ItemRef]string, error) {
	var productIDs, materialIDs []int64
	for _, ref := range refs {
		switch ref.Type {
		case entity.ItemTypeProduct:
			productIDs = append(productIDs, ref.ID)
		case entity.ItemTypeRawMaterial:
			materialIDs = append(materialIDs, ref.ID)
		}
	}
	out := make(map[entity.ItemRef]string, len(refs))
	if len(productIDs) > 0 {
		rows, err := r.q.Query(ctx, selectProduct+` WHERE p.id = ANY($1)`, productIDs)
		if err != nil {
			return nil, fmt.Errorf("product labels: %w", err)
		}
		products, err := scanProducts(rows)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			out[entity.ItemRef{Type: entity.ItemTypeProduct, ID: p.ID}] = p.Label()
		}
	}
	if len(materialIDs) > 0 {
		rows, err := r.q.Query(ctx, selectRawMaterial+` WHERE m.id = ANY($1)`, materialIDs)
		if err != nil {
			return nil, fmt.Errorf("raw material labels: %w", err)
		}
		materials, err := scanRawMaterials(rows)
		if err != nil {
			return nil, err
		}
		for _, m := range materials {
			out[entity.ItemRef{Type: entity.ItemTypeRawMaterial, ID: m.ID}] = m.Label()
		}
	}
	return out, nil
}

func (r *CatalogRepo) ListProductStock(ctx context.Context, limit, offset int) ([]repository.ProductStockRow, error) {
	query := `
	SELECT p.id, p.product_type_id, pt.name, COALESCE(p.product_variant_id, 0), COALESCE(pv.name, ''),
		p.size_id, s.label, p.size_unit_id, su.name,
		p.unit_price, p.srp_price, p.description, COALESCE(p.created_by, 0), p.created_at,
		i.total_stock, i.threshold
	FROM products p
	JOIN product_types pt ON pt.id = p.product_type_id
	LEFT JOIN product_variants pv ON pv.id = p.product_variant_id
	JOIN sizes s ON s.id = p.size_id
	JOIN size_units su ON su.id = p.size_unit_id
	JOIN product_inventory i ON i.product_id = p.id
	ORDER BY pt.name, pv.name NULLS FIRST, s.label, p.id
	LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list product stock: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductStockRow
	for rows.Next() {
		var row repository.ProductStockRow
		dest := append(productDest(&row.Product), &row.TotalStock, &row.Threshold)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *CatalogRepo) ListRawStock(ctx context.Context, limit, offset int) ([]repository.RawStockRow, error) {
	query := `
	SELECT m.id, m.name, m.size, m.unit, m.price_per_unit, COALESCE(m.created_by, 0), m.created_at,
		i.total_stock, i.threshold
	FROM raw_materials m
	JOIN raw_material_inventory i ON i.raw_material_id = m.id
	ORDER BY m.name, m.size, m.id
	LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list raw stock: %w", err)
	}
	defer rows.Close()
	var list []repository.RawStockRow
	for rows.Next() {
		var row repository.RawStockRow
		dest := append(rawMaterialDest(&row.Material), &row.TotalStock, &row.Threshold)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan raw stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *CatalogRepo) CountRawMaterials(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM raw_materials`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count raw materials: %w", err)
	}
	return n, nil
}

// CreateProduct busca o crea tipo, variante, tamaño y unidad; luego inserta producto e inventario.
func (r *CatalogRepo) CreateProduct(ctx context.Context, in repository.NewProduct) (*entity.Product, error) {
	var id int64
	err := inTx(ctx, r.q, func(q Querier) error {
		typeID, err := lookupID(ctx, q, "product_types", "name", in.TypeName)
		if err != nil {
			return err
		}
		var variantID *int64
		if in.VariantName != "" {
			v, err := lookupID(ctx, q, "product_variants", "name", in.VariantName)
			if err != nil {
				return err
			}
			variantID = &v
		}
		sizeID, err := lookupID(ctx, q, "sizes", "label", in.SizeLabel)
		if err != nil {
			return err
		}
		unitID, err := lookupID(ctx, q, "size_units", "name", in.UnitName)
		if err != nil {
			return err
		}
		query := `
			INSERT INTO products (product_type_id, product_variant_id, size_id, size_unit_id,
				unit_price, srp_price, description, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8::bigint, 0))
			RETURNING id`
		err = q.QueryRow(ctx, query, typeID, variantID, sizeID, unitID,
			in.UnitPrice, in.SrpPrice, in.Description, in.CreatedBy).Scan(&id)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: el producto ya existe", domain.ErrConflict)
			}
			return fmt.Errorf("insert product: %w", err)
		}
		_, err = q.Exec(ctx, `INSERT INTO product_inventory (product_id, total_stock, threshold) VALUES ($1, 0, $2)`, id, in.Threshold)
		if err != nil {
			return fmt.Errorf("insert product inventory: %w", err)
		}
		return insertRecipe(ctx, q, id, in.Recipe)
	})
	if err != nil {
		return nil, err
	}
	return r.GetProduct(ctx, id)
}

// lookupID busca o crea una fila de catálogo auxiliar por su columna única.
func lookupID(ctx context.Context, q Querier, table, column, value string) (int64, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: %s vacío", domain.ErrInvalidInput, table)
	}
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s) VALUES ($1)
		ON CONFLICT (%[2]s) DO UPDATE SET %[2]s = EXCLUDED.%[2]s
		RETURNING id`, table, column)
	var id int64
	if err := q.QueryRow(ctx, query, value).Scan(&id); err != nil {
		return 0, fmt.Errorf("lookup %s: %w", table, err)
	}
	return id, nil
}

func (r *CatalogRepo) CreateRawMaterial(ctx context.Context, m *entity.RawMaterial, threshold int64) error {
	return inTx(ctx, r.q, func(q Querier) error {
		query := `
			INSERT INTO raw_materials (name, size, unit, price_per_unit, created_by)
			VALUES ($1, $2, $3, $4, NULLIF($5::bigint, 0))
			RETURNING id, created_at`
		err := q.QueryRow(ctx, query, m.Name, m.Size, m.Unit, m.PricePerUnit, m.CreatedBy).Scan(&m.ID, &m.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: la materia prima ya existe", domain.ErrConflict)
			}
			return fmt.Errorf("insert raw material: %w", err)
		}
		_, err = q.Exec(ctx, `INSERT INTO raw_material_inventory (raw_material_id, total_stock, threshold) VALUES ($1, 0, $2)`, m.ID, threshold)
		if err != nil {
			return fmt.Errorf("insert raw material inventory: %w", err)
		}
		return nil
	})
}

func (r *CatalogRepo) DeleteProduct(ctx context.Context, id int64) error {
	return r.delete(ctx, "products", id)
}

func (r *CatalogRepo) DeleteRawMaterial(ctx context.Context, id int64) error {
	return r.delete(ctx, "raw_materials", id)
}

// delete lotes y recetas referencian con ON DELETE RESTRICT: la violación de FK es un conflicto.
func (r *CatalogRepo) delete(ctx context.Context, table string, id int64) error {
	tag, err := r.q.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: tiene lotes o recetas asociadas", domain.ErrConflict)
		}
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) Recipe(ctx context.Context, productID int64) ([]entity.RecipeLine, error) {
	query := `
		SELECT product_id, raw_material_id, quantity_per_unit
		FROM product_recipes
		WHERE product_id = $1
		ORDER BY raw_material_id`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	defer rows.Close()
	var lines []entity.RecipeLine
	for rows.Next() {
		var l entity.RecipeLine
		if err := rows.Scan(&l.ProductID, &l.MaterialID, &l.QuantityPerUnit); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// SetRecipe reemplaza todas las líneas de la receta.
func (r *CatalogRepo) SetRecipe(ctx context.Context, productID int64, lines []entity.RecipeLine) error {
	return inTx(ctx, r.q, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM product_recipes WHERE product_id = $1`, productID); err != nil {
			return fmt.Errorf("clear recipe: %w", err)
		}
		return insertRecipe(ctx, q, productID, lines)
	})
}

func insertRecipe(ctx context.Context, q Querier, productID int64, lines []entity.RecipeLine) error {
	for _, l := range lines {
		_, err := q.Exec(ctx,
			`INSERT INTO product_recipes (product_id, raw_material_id, quantity_per_unit) VALUES ($1, $2, $3)`,
			productID, l.MaterialID, l.QuantityPerUnit)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}
	return nil
}

func (r *CatalogRepo) UpdateMaterialCost(ctx context.Context, id int64, cost decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE raw_materials SET price_per_unit = $2 WHERE id = $1`, id, cost)
	if err != nil {
		return fmt.Errorf("update material cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(productDest(&p)...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func scanRawMaterials(rows pgx.Rows) ([]*entity.RawMaterial, error) {
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(rawMaterialDest(&m)...); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
