package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Wellify-Group/wellify-business-sub000/internal/config"
	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	LoginTerminal(ctx context.Context, req dto.TerminalLoginRequest) (*dto.TerminalLoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)

	// ResolveDashboardCredentials and ResolveTerminalCredentials are the raw
	// resolver surface: (nil, nil) on any credential failure, error only for
	// storage I/O trouble.
	ResolveDashboardCredentials(ctx context.Context, role, identifier, secret string) (*model.User, error)
	ResolveTerminalCredentials(ctx context.Context, code, pin string) (*model.User, error)
}

type authService struct {
	users     repository.UserRepository
	locations repository.LocationRepository
	cfg       *config.Config
}

func NewAuthService(users repository.UserRepository, locations repository.LocationRepository, cfg *config.Config) AuthService {
	return &authService{users: users, locations: locations, cfg: cfg}
}

func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.LoginResponse, error) {
	existing, err := s.users.FindByEmailOrPhone(ctx, model.RoleDirector, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	director := &model.User{
		ID:           uuid.New().String(),
		Role:         model.RoleDirector,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		CompanyCode:  GenerateAccessCode(),
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// A director's business scope is their own identity.
	director.BusinessID = director.ID

	if err := s.users.Save(ctx, director); err != nil {
		return nil, err
	}
	log.Info().Str("user_id", director.ID).Msg("auth: director signed up")
	return s.loginResponse(director)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.ResolveDashboardCredentials(ctx, req.Role, req.Identifier, req.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return s.loginResponse(user)
}

func (s *authService) LoginTerminal(ctx context.Context, req dto.TerminalLoginRequest) (*dto.TerminalLoginResponse, error) {
	employee, err := s.ResolveTerminalCredentials(ctx, req.Code, req.PIN)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(employee, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.TerminalLoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        dto.NewUserResponse(employee),
	}, nil
}

// ResolveDashboardCredentials matches a director/manager by email-or-phone,
// then checks the password. Identifier-not-found and wrong-password both
// resolve to nil.
func (s *authService) ResolveDashboardCredentials(ctx context.Context, role, identifier, secret string) (*model.User, error) {
	user, err := s.users.FindByEmailOrPhone(ctx, role, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Debug().Str("role", role).Msg("auth: identifier not found")
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(secret)) != nil {
		log.Debug().Str("user_id", user.ID).Msg("auth: password mismatch")
		return nil, nil
	}
	return user, nil
}

// ResolveTerminalCredentials runs the terminal login state machine:
// the code resolves to a business (director company code) or, failing that,
// to a single location (access code); the PIN is then matched against the
// employees of that business, narrowed to the location when one is set.
// No code match means no employee scan at all.
func (s *authService) ResolveTerminalCredentials(ctx context.Context, code, pin string) (*model.User, error) {
	var targetBusinessID, targetLocationID string

	director, err := s.users.FindByCompanyCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if director != nil {
		targetBusinessID = director.OwnedBusinessID()
	} else {
		location, err := s.locations.FindByAccessCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if location == nil {
			log.Debug().Msg("auth: terminal code matched neither business nor location")
			return nil, nil
		}
		targetBusinessID = location.BusinessID
		targetLocationID = location.ID
	}

	employees, err := s.users.ListByBusiness(ctx, model.RoleEmployee, targetBusinessID)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		e := &employees[i]
		if e.PIN == "" || e.PIN != pin {
			continue
		}
		if targetLocationID != "" {
			if e.AssignedPointID == nil || *e.AssignedPointID != targetLocationID {
				continue
			}
		}
		return e, nil
	}
	log.Debug().Str("business_id", targetBusinessID).Msg("auth: no employee matched terminal PIN")
	return nil, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, role, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return s.loginResponse(user)
}

func (s *authService) loginResponse(user *model.User) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.User, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     user.ID,
		"role":        user.Role,
		"business_id": user.OwnedBusinessID(),
		"exp":         time.Now().Add(duration).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
