package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

// StaffService manages the managers and employees of one business.
type StaffService interface {
	Create(ctx context.Context, businessID string, req dto.CreateStaffRequest) (*dto.UserResponse, error)
	List(ctx context.Context, businessID, role string) ([]dto.UserResponse, error)
	Update(ctx context.Context, businessID, role, id string, req dto.UpdateStaffRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, businessID, role, id string) error
}

type staffService struct {
	users repository.UserRepository
}

func NewStaffService(users repository.UserRepository) StaffService {
	return &staffService{users: users}
}

func (s *staffService) Create(ctx context.Context, businessID string, req dto.CreateStaffRequest) (*dto.UserResponse, error) {
	now := time.Now().UTC()
	user := &model.User{
		ID:         uuid.New().String(),
		Role:       req.Role,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		BusinessID: businessID,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	switch req.Role {
	case model.RoleManager:
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	case model.RoleEmployee:
		user.PIN = req.PIN
		if req.AssignedPointID != "" {
			point := req.AssignedPointID
			user.AssignedPointID = &point
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("staff member created")
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *staffService) List(ctx context.Context, businessID, role string) ([]dto.UserResponse, error) {
	users, err := s.users.ListByBusiness(ctx, role, businessID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = dto.NewUserResponse(&users[i])
	}
	return resp, nil
}

func (s *staffService) Update(ctx context.Context, businessID, role, id string, req dto.UpdateStaffRequest) (*dto.UserResponse, error) {
	if err := s.checkOwned(ctx, businessID, role, id); err != nil {
		return nil, err
	}

	patch := repository.UserPatch{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		PIN:             req.PIN,
		AssignedPointID: req.AssignedPointID,
		Status:          req.Status,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), 12)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	user, err := s.users.Update(ctx, role, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *staffService) Delete(ctx context.Context, businessID, role, id string) error {
	if err := s.checkOwned(ctx, businessID, role, id); err != nil {
		return err
	}
	err := s.users.Delete(ctx, role, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *staffService) checkOwned(ctx context.Context, businessID, role, id string) error {
	user, err := s.users.FindByID(ctx, role, id)
	if err != nil {
		return err
	}
	if user == nil || repository.NormalizeCode(user.BusinessID) != repository.NormalizeCode(businessID) {
		return ErrNotFound
	}
	return nil
}
