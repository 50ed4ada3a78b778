package statement

import (
	"context"
	"errors"
	"time"

	statementdomain "family-dues-go/internal/domain/statement"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ExistsForPeriod(ctx context.Context, familyID string, periodStart, periodEnd time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&statementdomain.Statement{}).
		Where("family_id = ? AND from_date >= ? AND from_date < ?", familyID, periodStart, periodEnd).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, statement *statementdomain.Statement) error {
	return r.db.WithContext(ctx).Create(statement).Error
}

func (r *PostgresRepository) Get(ctx context.Context, statementID string) (*statementdomain.Statement, error) {
	var statement statementdomain.Statement
	if err := r.db.WithContext(ctx).Where("id = ?", statementID).First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, statementdomain.ErrStatementNotFound
		}
		return nil, err
	}
	return &statement, nil
}

func (r *PostgresRepository) ListByFamily(ctx context.Context, familyID string) ([]statementdomain.Statement, error) {
	var statements []statementdomain.Statement
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("from_date desc").
		Find(&statements).Error; err != nil {
		return nil, err
	}
	return statements, nil
}
