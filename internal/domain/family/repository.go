package family

import (
	"context"
	"time"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	GetFamily(ctx context.Context, familyID string) (*Family, error)
	ListFamilies(ctx context.Context) ([]Family, error)
	CreateFamily(ctx context.Context, family *Family) error
	UpdateFamily(ctx context.Context, family *Family) error
	DeleteFamily(ctx context.Context, familyID string) error

	GetMember(ctx context.Context, memberID string) (*Member, error)
	ListMembers(ctx context.Context, familyID string) ([]Member, error)
	ListAllMembers(ctx context.Context) ([]Member, error)
	ListDueWeddings(ctx context.Context, asOf time.Time) ([]Member, error)
	CreateMember(ctx context.Context, member *Member) error
	UpdateMember(ctx context.Context, member *Member) error
	MarkMemberConverted(ctx context.Context, memberID string) error
	DeleteMember(ctx context.Context, memberID string) error
	CountMembers(ctx context.Context, familyID string) (int64, error)
}
