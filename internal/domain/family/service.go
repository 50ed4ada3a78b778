package family

import (
	"context"
	"fmt"
	"strings"

	"family-dues-go/internal/domain/plan"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetFamily(ctx context.Context, familyID string) (*Family, error) {
	return s.repo.GetFamily(ctx, familyID)
}

func (s *Service) ListFamilies(ctx context.Context) ([]Family, error) {
	return s.repo.ListFamilies(ctx)
}

func (s *Service) CreateFamily(ctx context.Context, input CreateFamilyInput) (*Family, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.WeddingDate.IsZero() {
		return nil, fmt.Errorf("wedding date is required")
	}
	if input.CurrentPlan == 0 {
		input.CurrentPlan = 1
	}
	if input.CurrentPlan < 1 || input.CurrentPlan > plan.BracketCount {
		return nil, fmt.Errorf("current plan must be between 1 and %d", plan.BracketCount)
	}

	family := Family{
		ID:             uuid.NewString(),
		Name:           input.Name,
		WeddingDate:    input.WeddingDate,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
		Zip:            input.Zip,
		Phone:          input.Phone,
		Email:          input.Email,
		CurrentPlan:    input.CurrentPlan,
		CurrentPayment: input.CurrentPayment,
		OpenBalance:    input.OpenBalance,
	}
	if err := s.repo.CreateFamily(ctx, &family); err != nil {
		return nil, err
	}
	return &family, nil
}

func (s *Service) UpdateFamily(ctx context.Context, input UpdateFamilyInput) (*Family, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if input.CurrentPlan < 1 || input.CurrentPlan > plan.BracketCount {
		return nil, fmt.Errorf("current plan must be between 1 and %d", plan.BracketCount)
	}

	family, err := s.repo.GetFamily(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	family.Name = input.Name
	family.WeddingDate = input.WeddingDate
	family.Address = input.Address
	family.City = input.City
	family.State = input.State
	family.Zip = input.Zip
	family.Phone = input.Phone
	family.Email = input.Email
	family.CurrentPlan = input.CurrentPlan
	family.CurrentPayment = input.CurrentPayment
	family.OpenBalance = input.OpenBalance

	if err := s.repo.UpdateFamily(ctx, family); err != nil {
		return nil, err
	}
	return family, nil
}

func (s *Service) DeleteFamily(ctx context.Context, familyID string) error {
	if _, err := s.repo.GetFamily(ctx, familyID); err != nil {
		return err
	}
	return s.repo.DeleteFamily(ctx, familyID)
}

func (s *Service) ListMembers(ctx context.Context, familyID string) ([]Member, error) {
	if _, err := s.repo.GetFamily(ctx, familyID); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, familyID)
}

func (s *Service) CreateMember(ctx context.Context, input CreateMemberInput) (*Member, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if input.FirstName == "" || input.LastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}

	if _, err := s.repo.GetFamily(ctx, input.FamilyID); err != nil {
		return nil, err
	}

	member := Member{
		ID:          uuid.NewString(),
		FamilyID:    input.FamilyID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		BirthDate:   input.BirthDate,
		Gender:      input.Gender,
		WeddingDate: input.WeddingDate,
		SpouseName:  strings.TrimSpace(input.SpouseName),
		Notes:       input.Notes,
	}
	if err := s.repo.CreateMember(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *Service) UpdateMember(ctx context.Context, input UpdateMemberInput) (*Member, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	if input.FirstName == "" || input.LastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}

	member, err := s.repo.GetMember(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if member.FamilyID != input.FamilyID {
		return nil, ErrMemberNotFound
	}

	member.FirstName = input.FirstName
	member.LastName = input.LastName
	member.BirthDate = input.BirthDate
	member.Gender = input.Gender
	member.WeddingDate = input.WeddingDate
	member.SpouseName = strings.TrimSpace(input.SpouseName)
	member.Notes = input.Notes

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) DeleteMember(ctx context.Context, familyID, memberID string) error {
	member, err := s.repo.GetMember(ctx, memberID)
	if err != nil {
		return err
	}
	if member.FamilyID != familyID {
		return ErrMemberNotFound
	}
	return s.repo.DeleteMember(ctx, memberID)
}
