package staff

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
	staffTable = "staff"
	hoursTable = "staff_hours"
)

var staffColumns = []string{"id", "shop_id", "name", "title", "is_active"}

// Repository репозиторий мастеров и их личного расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает мастера
func (r *Repository) Create(ctx context.Context, s *domain.Staff) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(staffTable).
		Columns("shop_id", "name", "title", "is_active").
		Values(s.ShopID, s.Name, s.Title, s.IsActive).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From(staffTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.ShopID, &s.Name, &s.Title, &s.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListActiveByShop возвращает активных мастеров салона по имени
func (r *Repository) ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From(staffTable).
		Where(squirrel.Eq{"shop_id": shopID, "is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByShop - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByShop - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	list := make([]*domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.ShopID, &s.Name, &s.Title, &s.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListActiveByShop - scan row: %v", ErrScanRow, err)
		}
		list = append(list, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByShop - rows error: %v", ErrScanRow, err)
	}

	return list, nil
}

// ListHours возвращает личное расписание мастера по дням недели.
// Расписание хранится и редактируется, но при расчёте слотов не используется.
func (r *Repository) ListHours(ctx context.Context, staffID int64) ([]domain.WorkingInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "start_hm", "end_hm").
		From(hoursTable).
		Where(squirrel.Eq{"staff_id": staffID}).
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

// ReplaceHours заменяет расписание мастера. Вызывается внутри транзакции.
func (r *Repository) ReplaceHours(ctx context.Context, staffID int64, hours []domain.WorkingInterval) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(hoursTable).
		Where(squirrel.Eq{"staff_id": staffID}).
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

	insertBuilder := psqlbuilder.Insert(hoursTable).Columns("staff_id", "weekday", "start_hm", "end_hm")
	for _, h := range hours {
		insertBuilder = insertBuilder.Values(staffID, h.Weekday, h.Start, h.End)
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
