package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

type LocationService interface {
	Create(ctx context.Context, businessID string, req dto.CreateLocationRequest) (*dto.LocationResponse, error)
	Get(ctx context.Context, businessID, id string) (*dto.LocationResponse, error)
	List(ctx context.Context, businessID string) ([]dto.LocationResponse, error)
	Update(ctx context.Context, businessID, id string, req dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	Delete(ctx context.Context, businessID, id string) error
}

type locationService struct {
	locations repository.LocationRepository
}

func NewLocationService(locations repository.LocationRepository) LocationService {
	return &locationService{locations: locations}
}

func (s *locationService) Create(ctx context.Context, businessID string, req dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	now := time.Now().UTC()
	location := &model.Location{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       req.Name,
		Address:    req.Address,
		AccessCode: GenerateAccessCode(),
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.locations.Save(ctx, location); err != nil {
		return nil, err
	}
	log.Info().Str("location_id", location.ID).Str("business_id", businessID).Msg("location created")
	resp := dto.NewLocationResponse(location)
	return &resp, nil
}

func (s *locationService) Get(ctx context.Context, businessID, id string) (*dto.LocationResponse, error) {
	location, err := s.owned(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewLocationResponse(location)
	return &resp, nil
}

func (s *locationService) List(ctx context.Context, businessID string) ([]dto.LocationResponse, error) {
	locations, err := s.locations.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		resp[i] = dto.NewLocationResponse(&locations[i])
	}
	return resp, nil
}

func (s *locationService) Update(ctx context.Context, businessID, id string, req dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	if _, err := s.owned(ctx, businessID, id); err != nil {
		return nil, err
	}
	location, err := s.locations.Update(ctx, id, repository.LocationPatch{
		Name:      req.Name,
		Address:   req.Address,
		ManagerID: req.ManagerID,
		Status:    req.Status,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := dto.NewLocationResponse(location)
	return &resp, nil
}

func (s *locationService) Delete(ctx context.Context, businessID, id string) error {
	if _, err := s.owned(ctx, businessID, id); err != nil {
		return err
	}
	err := s.locations.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// owned loads a location and checks it belongs to the caller's business.
// Foreign locations read as not-found, never as forbidden.
func (s *locationService) owned(ctx context.Context, businessID, id string) (*model.Location, error) {
	location, err := s.locations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil || repository.NormalizeCode(location.BusinessID) != repository.NormalizeCode(businessID) {
		return nil, ErrNotFound
	}
	return location, nil
}
