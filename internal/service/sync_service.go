package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
)

// syncCacheTTL bounds how stale an aggregate payload may be. The fan-out
// join behind it is O(locations × shift files), so clients polling the sync
// endpoint mostly hit redis instead of the disk.
const syncCacheTTL = 30 * time.Second

// SyncService builds the cross-entity read view a client pulls after login:
// the user, their business's locations, and — directors only — the staff
// roster plus every location's shifts.
type SyncService interface {
	GetUserData(ctx context.Context, userID, role string) (*dto.SyncResponse, error)
}

type syncService struct {
	users     repository.UserRepository
	locations repository.LocationRepository
	shifts    repository.ShiftRepository
	rdb       *redis.Client // nil = cache disabled
}

func NewSyncService(users repository.UserRepository, locations repository.LocationRepository, shifts repository.ShiftRepository, rdb *redis.Client) SyncService {
	return &syncService{users: users, locations: locations, shifts: shifts, rdb: rdb}
}

func (s *syncService) GetUserData(ctx context.Context, userID, role string) (*dto.SyncResponse, error) {
	cacheKey := "sync:" + role + ":" + userID
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached dto.SyncResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	resp, err := s.build(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, raw, syncCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("sync: cache write failed")
			}
		}
	}
	return resp, nil
}

func (s *syncService) build(ctx context.Context, userID, role string) (*dto.SyncResponse, error) {
	user, err := s.users.FindByID(ctx, role, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Unknown user reads as the zero aggregate, never an error.
		return dto.EmptySyncResponse(), nil
	}

	resp := dto.EmptySyncResponse()
	userResp := dto.NewUserResponse(user)
	resp.User = &userResp

	businessID := user.OwnedBusinessID()
	locations, err := s.locations.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	for i := range locations {
		resp.Locations = append(resp.Locations, dto.NewLocationResponse(&locations[i]))
	}

	if user.Role != model.RoleDirector {
		return resp, nil
	}

	employees, err := s.users.ListByBusiness(ctx, model.RoleEmployee, businessID)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		resp.Employees = append(resp.Employees, dto.NewUserResponse(&employees[i]))
	}

	managers, err := s.users.ListByBusiness(ctx, model.RoleManager, businessID)
	if err != nil {
		return nil, err
	}
	for i := range managers {
		resp.Managers = append(resp.Managers, dto.NewUserResponse(&managers[i]))
	}

	for i := range locations {
		shifts, err := s.shifts.ListByLocation(ctx, locations[i].ID)
		if err != nil {
			return nil, err
		}
		for j := range shifts {
			resp.Shifts = append(resp.Shifts, dto.NewShiftResponse(&shifts[j]))
		}
	}
	return resp, nil
}
