package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HairBooking/pkg/psqlbuilder"
)

const (
	shopsTable = "shops"
	hoursTable = "shop_hours"
)

var shopColumns = []string{
	"id",
	"name",
	"city",
	"area",
	"category",
	"address",
	"phone",
	"description",
	"is_open",
}

// Repository репозиторий салонов и их часов работы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает салон
func (r *Repository) Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(shopsTable).
		Columns("name", "city", "area", "category", "address", "phone", "description", "is_open").
		Values(
			shop.Name,
			shop.City,
			shop.Area,
			string(shop.Category),
			shop.Address,
			shop.Phone,
			shop.Description,
			shop.IsOpen,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&shop.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return shop, nil
}

// GetByID получает салон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shopColumns...).
		From(shopsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	shop, err := scanShop(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shop: %v", ErrScanRow, err)
	}

	return shop, nil
}

// Search возвращает салоны по фильтру: сначала открытые, затем по названию
func (r *Repository) Search(ctx context.Context, filter domain.ShopFilter) ([]*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(shopColumns...).
		From(shopsTable).
		OrderBy("is_open DESC", "name ASC")

	if filter.Query != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"name": "%" + filter.Query + "%"})
	}
	if filter.City != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"city": filter.City})
	}
	if len(filter.Categories) > 0 {
		categories := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			categories[i] = string(c)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": categories})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryShops(ctx, executor, query, args, "Search")
}

// ListAll возвращает все салоны по названию
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(shopColumns...).
		From(shopsTable).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryShops(ctx, executor, query, args, "ListAll")
}

// DistinctCities возвращает список городов салонов
func (r *Repository) DistinctCities(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "city")
}

// DistinctCategories возвращает список категорий салонов
func (r *Repository) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "category")
}

// UpdateCategory меняет категорию салона
func (r *Repository) UpdateCategory(ctx context.Context, id int64, category domain.ShopCategory) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(shopsTable).
		Set("category", string(category)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCategory - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, query, args, "UpdateCategory")
}

// ToggleOpen переключает флаг is_open и возвращает новое значение
func (r *Repository) ToggleOpen(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(shopsTable).
		Set("is_open", squirrel.Expr("NOT is_open")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING is_open").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ToggleOpen - build update query: %v", ErrBuildQuery, err)
	}

	var isOpen bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&isOpen)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrShopNotFound
	}
	if err != nil {
		return false, fmt.Errorf("%w: ToggleOpen - execute update: %v", ErrExecQuery, err)
	}

	return isOpen, nil
}

// Delete удаляет салон. Часы, мастера, услуги, записи и отзывы удаляются каскадно.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(shopsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffecting(ctx, executor, query, args, "Delete")
}

// GetHours возвращает интервал работы салона на день недели
func (r *Repository) GetHours(ctx context.Context, shopID int64, weekday int) (*domain.WorkingInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "start_hm", "end_hm").
		From(hoursTable).
		Where(squirrel.Eq{"shop_id": shopID, "weekday": weekday}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetHours - build select query: %v", ErrBuildQuery, err)
	}

	var interval domain.WorkingInterval
	err = executor.QueryRowContext(ctx, query, args...).Scan(&interval.Weekday, &interval.Start, &interval.End)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHours - scan hours: %v", ErrScanRow, err)
	}

	return &interval, nil
}

// ListHours возвращает все интервалы салона по дням недели
func (r *Repository) ListHours(ctx context.Context, shopID int64) ([]domain.WorkingInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "start_hm", "end_hm").
		From(hoursTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.WorkingInterval, 0)
	for rows.Next() {
		var interval domain.WorkingInterval
		if err := rows.Scan(&interval.Weekday, &interval.Start, &interval.End); err != nil {
			return nil, fmt.Errorf("%w: ListHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// ReplaceHours заменяет все интервалы салона.
// Вызывается внутри транзакции, чтобы удаление и вставка были атомарны.
func (r *Repository) ReplaceHours(ctx context.Context, shopID int64, hours []domain.WorkingInterval) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(hoursTable).
		Where(squirrel.Eq{"shop_id": shopID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(hours) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(hoursTable).Columns("shop_id", "weekday", "start_hm", "end_hm")
	for _, h := range hours {
		insertBuilder = insertBuilder.Values(shopID, h.Weekday, h.Start, h.End)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) distinct(ctx context.Context, column string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(column).
		Distinct().
		From(shopsTable).
		OrderBy(column + " ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: distinct %s - build select query: %v", ErrBuildQuery, column, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: distinct %s - execute query: %v", ErrExecQuery, column, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: distinct %s - scan row: %v", ErrScanRow, column, err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: distinct %s - rows error: %v", ErrScanRow, column, err)
	}

	return values, nil
}

func (r *Repository) queryShops(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]*domain.Shop, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	shops := make([]*domain.Shop, 0)
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		shops = append(shops, shop)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return shops, nil
}

func (r *Repository) execAffecting(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrShopNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShop(row rowScanner) (*domain.Shop, error) {
	var (
		shop     domain.Shop
		category string
	)

	err := row.Scan(
		&shop.ID,
		&shop.Name,
		&shop.City,
		&shop.Area,
		&category,
		&shop.Address,
		&shop.Phone,
		&shop.Description,
		&shop.IsOpen,
	)
	if err != nil {
		return nil, err
	}

	shop.Category = domain.NormalizeCategory(category)
	return &shop, nil
}
