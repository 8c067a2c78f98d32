package review

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HairBooking/pkg/psqlbuilder"
)

const table = "reviews"

// Repository репозиторий отзывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв
func (r *Repository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("shop_id", "customer_name", "rating", "comment").
		Values(rv.ShopID, rv.CustomerName, rv.Rating, rv.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rv.ID, &rv.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rv, nil
}

// ListLatestByShop возвращает последние limit отзывов салона, новые первыми
func (r *Repository) ListLatestByShop(ctx context.Context, shopID int64, limit uint64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "shop_id", "customer_name", "rating", "comment", "created_at").
		From(table).
		Where(squirrel.Eq{"shop_id": shopID}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListLatestByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLatestByShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.ShopID, &rv.CustomerName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListLatestByShop - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLatestByShop - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
