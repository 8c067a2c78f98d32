package lead

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-HairBooking/pkg/psqlbuilder"
)

// Repository репозиторий заявок бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заявку
func (r *Repository) Create(ctx context.Context, l *domain.BusinessLead) (*domain.BusinessLead, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_leads").
		Columns("plan", "billing", "email", "phone").
		Values(l.Plan, l.Billing, l.Email, l.Phone).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&l.ID, &l.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return l, nil
}
