package wedding

import (
	"context"
	"fmt"
	"strings"
	"time"

	familydomain "family-dues-go/internal/domain/family"
	"family-dues-go/internal/domain/plan"
	"family-dues-go/pkg/logger"
	"github.com/google/uuid"
)

type Service struct {
	repo familydomain.Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo familydomain.Repository, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// ConvertDueWeddings promotes every unconverted member whose wedding date
// has arrived into a family of their own. Intended to run daily. One
// member's failure is recorded and the run continues.
func (s *Service) ConvertDueWeddings(ctx context.Context) (*Result, error) {
	today := s.now().UTC()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	due, err := s.repo.ListDueWeddings(ctx, startOfToday)
	if err != nil {
		return nil, err
	}

	s.log.Info("wedding-converter: members due", "count", len(due))

	result := Result{
		Members: []ConvertedMember{},
		Errors:  []ConvertError{},
	}

	for _, member := range due {
		converted, err := s.convertMember(ctx, member, today)
		if err != nil {
			s.log.BusinessError("wedding-converter: conversion failed", err, "member_id", member.ID)
			result.Errors = append(result.Errors, ConvertError{
				MemberID:   member.ID,
				MemberName: memberName(member),
				Error:      err.Error(),
			})
			continue
		}

		s.log.Info("wedding-converter: converted", "member_id", member.ID, "family_id", converted.FamilyID, "family_name", converted.FamilyName)
		result.Members = append(result.Members, *converted)
	}

	result.Converted = len(result.Members)
	result.Failed = len(result.Errors)
	return &result, nil
}

func (s *Service) convertMember(ctx context.Context, member familydomain.Member, today time.Time) (*ConvertedMember, error) {
	if member.WeddingDate == nil {
		return nil, fmt.Errorf("member %s has no wedding date", member.ID)
	}
	weddingDate := *member.WeddingDate

	original, err := s.repo.GetFamily(ctx, member.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("original family: %w", err)
	}

	yearsMarried := plan.WholeYearsBetween(weddingDate, today)
	currentPlan := planForYearsMarried(yearsMarried)

	newFamily := familydomain.Family{
		ID:          uuid.NewString(),
		Name:        newFamilyName(member),
		WeddingDate: weddingDate,
		Address:     original.Address,
		City:        original.City,
		State:       original.State,
		Zip:         original.Zip,
		Phone:       original.Phone,
		Email:       original.Email,
		CurrentPlan: currentPlan,
		OpenBalance: 0,
	}

	err = s.repo.Transaction(ctx, func(tx familydomain.Repository) error {
		if err := tx.CreateFamily(ctx, &newFamily); err != nil {
			return fmt.Errorf("create family: %w", err)
		}

		if member.SpouseName != "" {
			spouse := spouseMember(member, newFamily.ID, weddingDate)
			if err := tx.CreateMember(ctx, &spouse); err != nil {
				return fmt.Errorf("create spouse member: %w", err)
			}
		}

		// The converted individual becomes the family itself, not a
		// retained member record.
		if err := tx.MarkMemberConverted(ctx, member.ID); err != nil {
			return fmt.Errorf("mark converted: %w", err)
		}
		if err := tx.DeleteMember(ctx, member.ID); err != nil {
			return fmt.Errorf("delete member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ConvertedMember{
		MemberID:   member.ID,
		MemberName: memberName(member),
		FamilyID:   newFamily.ID,
		FamilyName: newFamily.Name,
		Plan:       currentPlan,
	}, nil
}

// planForYearsMarried maps marriage duration to a payment plan. The
// boundary values coincide with the age brackets, but this mapping is
// keyed by years married, not age.
func planForYearsMarried(years int) int {
	switch {
	case years <= 4:
		return 1
	case years <= 8:
		return 2
	case years <= 16:
		return 3
	default:
		return 4
	}
}

func newFamilyName(member familydomain.Member) string {
	if member.SpouseName != "" {
		return fmt.Sprintf("%s %s & %s", member.FirstName, member.LastName, member.SpouseName)
	}
	return fmt.Sprintf("%s %s Family", member.FirstName, member.LastName)
}

// spouseMember builds the spouse record for the new family. The birth
// date is approximated by the wedding date; product has not supplied a
// better source, so it stays editable afterwards.
func spouseMember(member familydomain.Member, familyID string, weddingDate time.Time) familydomain.Member {
	parts := strings.Fields(member.SpouseName)
	firstName := member.SpouseName
	lastName := member.LastName
	if len(parts) > 0 {
		firstName = parts[0]
	}
	if len(parts) > 1 {
		lastName = strings.Join(parts[1:], " ")
	}

	birthDate := weddingDate
	return familydomain.Member{
		ID:        uuid.NewString(),
		FamilyID:  familyID,
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: &birthDate,
		Gender:    oppositeGender(member.Gender),
	}
}

func oppositeGender(gender string) string {
	switch gender {
	case "male":
		return "female"
	case "female":
		return "male"
	default:
		return ""
	}
}

func memberName(member familydomain.Member) string {
	return strings.TrimSpace(member.FirstName + " " + member.LastName)
}
