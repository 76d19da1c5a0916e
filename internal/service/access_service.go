package service

import (
	"context"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
)

// AccessService resolves a single 16-digit code to a business or a location.
type AccessService interface {
	// Resolve returns (nil, nil) when the code matches nothing. Directors are
	// checked before locations, so a code shared across both pools resolves
	// as a business.
	Resolve(ctx context.Context, code string) (*dto.AccessCodeResult, error)
}

type accessService struct {
	users     repository.UserRepository
	locations repository.LocationRepository
}

func NewAccessService(users repository.UserRepository, locations repository.LocationRepository) AccessService {
	return &accessService{users: users, locations: locations}
}

func (s *accessService) Resolve(ctx context.Context, code string) (*dto.AccessCodeResult, error) {
	director, err := s.users.FindByCompanyCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if director != nil {
		return &dto.AccessCodeResult{
			Type:    dto.CodeTypeBusiness,
			ID:      director.OwnedBusinessID(),
			Name:    director.FullName,
			OwnerID: director.ID,
		}, nil
	}

	location, err := s.locations.FindByAccessCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return &dto.AccessCodeResult{
		Type:       dto.CodeTypeLocation,
		ID:         location.ID,
		Name:       location.Name,
		BusinessID: location.BusinessID,
	}, nil
}
