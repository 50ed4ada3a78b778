package family

import (
	"context"
	"errors"
	"time"

	familydomain "family-dues-go/internal/domain/family"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(familydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetFamily(ctx context.Context, familyID string) (*familydomain.Family, error) {
	var family familydomain.Family
	if err := r.db.WithContext(ctx).Where("id = ?", familyID).First(&family).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrFamilyNotFound
		}
		return nil, err
	}
	return &family, nil
}

func (r *PostgresRepository) ListFamilies(ctx context.Context) ([]familydomain.Family, error) {
	var families []familydomain.Family
	if err := r.db.WithContext(ctx).Order("name asc").Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *PostgresRepository) CreateFamily(ctx context.Context, family *familydomain.Family) error {
	return r.db.WithContext(ctx).Create(family).Error
}

func (r *PostgresRepository) UpdateFamily(ctx context.Context, family *familydomain.Family) error {
	return r.db.WithContext(ctx).Save(family).Error
}

func (r *PostgresRepository) DeleteFamily(ctx context.Context, familyID string) error {
	return r.db.WithContext(ctx).Delete(&familydomain.Family{}, "id = ?", familyID).Error
}

func (r *PostgresRepository) GetMember(ctx context.Context, memberID string) (*familydomain.Member, error) {
	var member familydomain.Member
	if err := r.db.WithContext(ctx).Where("id = ?", memberID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, familyID string) ([]familydomain.Member, error) {
	var members []familydomain.Member
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("last_name asc, first_name asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) ListAllMembers(ctx context.Context) ([]familydomain.Member, error) {
	var members []familydomain.Member
	if err := r.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) ListDueWeddings(ctx context.Context, asOf time.Time) ([]familydomain.Member, error) {
	var members []familydomain.Member
	if err := r.db.WithContext(ctx).
		Where("wedding_date IS NOT NULL AND wedding_date <= ? AND converted_to_family = false", asOf).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *familydomain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, member *familydomain.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *PostgresRepository) MarkMemberConverted(ctx context.Context, memberID string) error {
	return r.db.WithContext(ctx).Model(&familydomain.Member{}).
		Where("id = ?", memberID).
		Update("converted_to_family", true).Error
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, memberID string) error {
	return r.db.WithContext(ctx).Delete(&familydomain.Member{}, "id = ?", memberID).Error
}

func (r *PostgresRepository) CountMembers(ctx context.Context, familyID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&familydomain.Member{}).Where("family_id = ?", familyID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
