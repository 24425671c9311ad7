package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgauth "github.com/angelmondragon/mercado-backend/pkg/auth"
	"github.com/angelmondragon/mercado-backend/pkg/config"
	"github.com/angelmondragon/mercado-backend/pkg/db"
	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	"github.com/angelmondragon/mercado-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/security"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service handles supplier/admin authentication and supplier sign-up.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	RegisterSupplier(ctx context.Context, input RegisterSupplierInput) (*LoginResult, error)
}

type service struct {
	repo Repository
	tx   txRunner
	cfg  *config.Config
}

// NewService builds the auth service.
func NewService(repo Repository, tx txRunner, cfg *config.Config) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("auth repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}
	return &service{repo: repo, tx: tx, cfg: cfg}, nil
}

func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password required")
	}

	account, err := s.repo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load account")
	}

	ok, err := security.VerifyPassword(input.Password, account.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	return s.mintResult(account)
}

// RegisterSupplier creates the supplier row and its first operator account
// in one transaction; a duplicate email rolls both back.
func (s *service) RegisterSupplier(ctx context.Context, input RegisterSupplierInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" || strings.TrimSpace(input.SupplierName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier name, email and password required")
	}

	hash, err := security.HashPassword(input.Password, s.cfg.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var account *models.Account
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		supplier, err := repo.CreateSupplier(ctx, &models.Supplier{
			Name:        strings.TrimSpace(input.SupplierName),
			Description: input.Description,
			Email:       email,
			Phone:       input.Phone,
			IsActive:    true,
		})
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create supplier")
		}

		account, err = repo.CreateAccount(ctx, &models.Account{
			SupplierID:   &supplier.ID,
			Email:        email,
			PasswordHash: hash,
			Role:         enums.AccountRoleSupplier,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create account")
		}
		return nil
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "register supplier")
	}

	return s.mintResult(account)
}

func (s *service) mintResult(account *models.Account) (*LoginResult, error) {
	token, err := pkgauth.MintAccessToken(s.cfg.JWT, time.Now().UTC(), pkgauth.AccessTokenPayload{
		AccountID:  account.ID,
		SupplierID: account.SupplierID,
		Role:       account.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}
	return &LoginResult{
		AccessToken: token,
		AccountID:   account.ID,
		SupplierID:  account.SupplierID,
		Role:        account.Role,
	}, nil
}
