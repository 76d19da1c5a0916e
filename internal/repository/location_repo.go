package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

// LocationPatch carries the mutable fields of a location; nil = unchanged.
// A ManagerID of "" clears the assignment.
type LocationPatch struct {
	Name       *string
	Address    *string
	AccessCode *string
	ManagerID  *string
	Status     *string
}

type LocationRepository interface {
	Save(ctx context.Context, l *model.Location) error
	FindByID(ctx context.Context, id string) (*model.Location, error)
	ListByBusiness(ctx context.Context, businessID string) ([]model.Location, error)
	// FindByAccessCode scans all locations of all businesses for a normalized
	// access-code match.
	FindByAccessCode(ctx context.Context, code string) (*model.Location, error)
	Update(ctx context.Context, id string, patch LocationPatch) (*model.Location, error)
	Delete(ctx context.Context, id string) error
}

type locationRepo struct{ st store.Store }

func NewLocationRepository(st store.Store) LocationRepository { return &locationRepo{st: st} }

func (r *locationRepo) Save(ctx context.Context, l *model.Location) error {
	return r.st.Write(ctx, locationsDir, l)
}

func (r *locationRepo) FindByID(ctx context.Context, id string) (*model.Location, error) {
	return r.scanFirst(ctx, func(l *model.Location) bool { return l.ID == id })
}

func (r *locationRepo) ListByBusiness(ctx context.Context, businessID string) ([]model.Location, error) {
	want := NormalizeCode(businessID)
	var locations []model.Location
	err := r.st.Scan(ctx, locationsDir, func(raw []byte) error {
		l, ok := decode[model.Location](raw, locationsDir)
		if ok && NormalizeCode(l.BusinessID) == want {
			locations = append(locations, *l)
		}
		return nil
	})
	return locations, err
}

func (r *locationRepo) FindByAccessCode(ctx context.Context, code string) (*model.Location, error) {
	want := NormalizeCode(code)
	if want == "" {
		return nil, nil
	}
	return r.scanFirst(ctx, func(l *model.Location) bool {
		return l.AccessCode != "" && NormalizeCode(l.AccessCode) == want
	})
}

func (r *locationRepo) Update(ctx context.Context, id string, patch LocationPatch) (*model.Location, error) {
	rec, err := r.st.Update(ctx, locationsDir, id, func(raw []byte) (store.Record, error) {
		var l model.Location
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("repository: decode location %s: %w", id, err)
		}
		applyLocationPatch(&l, patch)
		l.UpdatedAt = time.Now().UTC()
		return &l, nil
	})
	if err != nil {
		return nil, err
	}
	return rec.(*model.Location), nil
}

func (r *locationRepo) Delete(ctx context.Context, id string) error {
	return r.st.Remove(ctx, locationsDir, id)
}

func (r *locationRepo) scanFirst(ctx context.Context, match func(*model.Location) bool) (*model.Location, error) {
	var found *model.Location
	err := r.st.Scan(ctx, locationsDir, func(raw []byte) error {
		l, ok := decode[model.Location](raw, locationsDir)
		if ok && match(l) {
			found = l
			return store.ErrStopScan
		}
		return nil
	})
	return found, err
}

func applyLocationPatch(l *model.Location, p LocationPatch) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.AccessCode != nil {
		l.AccessCode = *p.AccessCode
	}
	if p.ManagerID != nil {
		if *p.ManagerID == "" {
			l.ManagerID = nil
		} else {
			l.ManagerID = p.ManagerID
		}
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
}
