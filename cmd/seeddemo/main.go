// cmd/seeddemo/main.go — seeds a demo tenant for local frontend work.
// Usage: go run ./cmd/seeddemo
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("data dir error: %v", err)
	}

	st := store.NewFSStore(dataDir)
	users := repository.NewUserRepository(st)
	locations := repository.NewLocationRepository(st)
	ctx := context.Background()
	now := time.Now().UTC()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	director := &model.User{
		ID:           uuid.NewString(),
		Role:         model.RoleDirector,
		FullName:     "Demo Director",
		Email:        "director@wellify.demo",
		Phone:        "+15550100",
		PasswordHash: string(hash),
		CompanyCode:  "1111-2222-3333-4444",
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	director.BusinessID = director.ID
	if err := users.Save(ctx, director); err != nil {
		log.Fatalf("seed director: %v", err)
	}

	location := &model.Location{
		ID:         uuid.NewString(),
		BusinessID: director.BusinessID,
		Name:       "Main Street Branch",
		Address:    "1 Main St",
		AccessCode: "5555-6666-7777-8888",
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := locations.Save(ctx, location); err != nil {
		log.Fatalf("seed location: %v", err)
	}

	manager := &model.User{
		ID:           uuid.NewString(),
		Role:         model.RoleManager,
		FullName:     "Demo Manager",
		Email:        "manager@wellify.demo",
		PasswordHash: string(hash),
		BusinessID:   director.BusinessID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Save(ctx, manager); err != nil {
		log.Fatalf("seed manager: %v", err)
	}

	employee := &model.User{
		ID:              uuid.NewString(),
		Role:            model.RoleEmployee,
		FullName:        "Demo Employee",
		PIN:             "4321",
		BusinessID:      director.BusinessID,
		AssignedPointID: &location.ID,
		Status:          "active",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := users.Save(ctx, employee); err != nil {
		log.Fatalf("seed employee: %v", err)
	}

	fmt.Printf("✅ demo tenant seeded in %s\n", dataDir)
	fmt.Printf("   director   director@wellify.demo / demo1234 (company code %s)\n", director.CompanyCode)
	fmt.Printf("   manager    manager@wellify.demo / demo1234\n")
	fmt.Printf("   employee   PIN 4321, assigned to %q (access code %s)\n", location.Name, location.AccessCode)
}
