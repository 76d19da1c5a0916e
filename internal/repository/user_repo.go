package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

// UserPatch carries the mutable fields of a user; nil = leave unchanged.
// An AssignedPointID of "" clears the assignment.
type UserPatch struct {
	FullName        *string
	Email           *string
	Phone           *string
	PasswordHash    *string
	PIN             *string
	AssignedPointID *string
	Status          *string
}

type UserRepository interface {
	Save(ctx context.Context, u *model.User) error
	// FindByID returns (nil, nil) when no record matches — absence is not an error.
	FindByID(ctx context.Context, role, id string) (*model.User, error)
	// FindByEmailOrPhone matches the normalized identifier against the stored
	// email (normalized) or phone (trimmed, exact). Director/manager login only.
	FindByEmailOrPhone(ctx context.Context, role, identifier string) (*model.User, error)
	// FindByPin scans employees. With a business scope both PIN and normalized
	// businessId must match; without one the first PIN match wins.
	FindByPin(ctx context.Context, pin, businessID string) (*model.User, error)
	// FindByCompanyCode scans directors for a normalized company-code match.
	FindByCompanyCode(ctx context.Context, code string) (*model.User, error)
	ListByBusiness(ctx context.Context, role, businessID string) ([]model.User, error)
	// Update merges the patch and re-files the record, renaming the file when
	// the display name changed. Returns store.ErrNotFound if no record matches.
	Update(ctx context.Context, role, id string, patch UserPatch) (*model.User, error)
	Delete(ctx context.Context, role, id string) error
}

type userRepo struct{ st store.Store }

func NewUserRepository(st store.Store) UserRepository { return &userRepo{st: st} }

func (r *userRepo) Save(ctx context.Context, u *model.User) error {
	return r.st.Write(ctx, roleDir(u.Role), u)
}

func (r *userRepo) FindByID(ctx context.Context, role, id string) (*model.User, error) {
	return r.scanFirst(ctx, role, func(u *model.User) bool { return u.ID == id })
}

func (r *userRepo) FindByEmailOrPhone(ctx context.Context, role, identifier string) (*model.User, error) {
	wantEmail := NormalizeIdentifier(identifier)
	wantPhone := trimmed(identifier)
	return r.scanFirst(ctx, role, func(u *model.User) bool {
		if u.Email != "" && NormalizeIdentifier(u.Email) == wantEmail {
			return true
		}
		return u.Phone != "" && trimmed(u.Phone) == wantPhone
	})
}

func (r *userRepo) FindByPin(ctx context.Context, pin, businessID string) (*model.User, error) {
	scope := NormalizeCode(businessID)
	return r.scanFirst(ctx, model.RoleEmployee, func(u *model.User) bool {
		if u.PIN == "" || u.PIN != pin {
			return false
		}
		return scope == "" || NormalizeCode(u.BusinessID) == scope
	})
}

func (r *userRepo) FindByCompanyCode(ctx context.Context, code string) (*model.User, error) {
	want := NormalizeCode(code)
	if want == "" {
		return nil, nil
	}
	return r.scanFirst(ctx, model.RoleDirector, func(u *model.User) bool {
		return u.CompanyCode != "" && NormalizeCode(u.CompanyCode) == want
	})
}

func (r *userRepo) ListByBusiness(ctx context.Context, role, businessID string) ([]model.User, error) {
	want := NormalizeCode(businessID)
	var users []model.User
	err := r.st.Scan(ctx, roleDir(role), func(raw []byte) error {
		u, ok := decode[model.User](raw, roleDir(role))
		if ok && NormalizeCode(u.BusinessID) == want {
			users = append(users, *u)
		}
		return nil
	})
	return users, err
}

func (r *userRepo) Update(ctx context.Context, role, id string, patch UserPatch) (*model.User, error) {
	rec, err := r.st.Update(ctx, roleDir(role), id, func(raw []byte) (store.Record, error) {
		var u model.User
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, fmt.Errorf("repository: decode user %s: %w", id, err)
		}
		applyUserPatch(&u, patch)
		u.UpdatedAt = time.Now().UTC()
		return &u, nil
	})
	if err != nil {
		return nil, err
	}
	return rec.(*model.User), nil
}

func (r *userRepo) Delete(ctx context.Context, role, id string) error {
	return r.st.Remove(ctx, roleDir(role), id)
}

func (r *userRepo) scanFirst(ctx context.Context, role string, match func(*model.User) bool) (*model.User, error) {
	var found *model.User
	err := r.st.Scan(ctx, roleDir(role), func(raw []byte) error {
		u, ok := decode[model.User](raw, roleDir(role))
		if ok && match(u) {
			found = u
			return store.ErrStopScan
		}
		return nil
	})
	return found, err
}

func applyUserPatch(u *model.User, p UserPatch) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.PIN != nil {
		u.PIN = *p.PIN
	}
	if p.AssignedPointID != nil {
		if *p.AssignedPointID == "" {
			u.AssignedPointID = nil
		} else {
			u.AssignedPointID = p.AssignedPointID
		}
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}

func trimmed(s string) string { return strings.TrimSpace(s) }
