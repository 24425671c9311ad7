package auth

import (
	"context"
	"testing"

	"github.com/angelmondragon/mercado-backend/pkg/config"
	"github.com/angelmondragon/mercado-backend/pkg/db/models"
	"github.com/angelmondragon/mercado-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mercado-backend/pkg/errors"
	"github.com/angelmondragon/mercado-backend/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubAuthRepo struct {
	account         *models.Account
	createdSupplier *models.Supplier
	createdAccount  *models.Account
}

func (s *stubAuthRepo) WithTx(tx *gorm.DB) Repository {
	return s
}

func (s *stubAuthRepo) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	if s.account == nil || s.account.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return s.account, nil
}

func (s *stubAuthRepo) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	s.createdAccount = account
	return account, nil
}

func (s *stubAuthRepo) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}
	s.createdSupplier = supplier
	return supplier, nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "mercado-test",
			ExpirationMinutes: 15,
		},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    8192,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
	}
}

func TestLoginSuccess(t *testing.T) {
	cfg := testConfig()
	hash, err := security.HashPassword("hunter2hunter2", cfg.Password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	supplierID := uuid.New()
	repo := &stubAuthRepo{account: &models.Account{
		ID:           uuid.New(),
		SupplierID:   &supplierID,
		Email:        "ops@widgetco.test",
		PasswordHash: hash,
		Role:         enums.AccountRoleSupplier,
	}}
	svc, err := NewService(repo, stubTxRunner{}, cfg)
	if err != nil {
		t.Fatalf("service constructor failed: %v", err)
	}

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "  Ops@WidgetCo.test ",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if result.AccessToken == "" {
		t.Fatal("expected a signed token")
	}
	if result.Role != enums.AccountRoleSupplier || result.SupplierID == nil || *result.SupplierID != supplierID {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	cfg := testConfig()
	hash, _ := security.HashPassword("correct-horse", cfg.Password)
	repo := &stubAuthRepo{account: &models.Account{
		ID:           uuid.New(),
		Email:        "ops@widgetco.test",
		PasswordHash: hash,
		Role:         enums.AccountRoleAdmin,
	}}
	svc, _ := NewService(repo, stubTxRunner{}, cfg)

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "ops@widgetco.test",
		Password: "battery-staple",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized got %v", err)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	svc, _ := NewService(&stubAuthRepo{}, stubTxRunner{}, testConfig())
	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.test",
		Password: "whatever",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized got %v", err)
	}
}

func TestRegisterSupplier(t *testing.T) {
	repo := &stubAuthRepo{}
	svc, _ := NewService(repo, stubTxRunner{}, testConfig())

	result, err := svc.RegisterSupplier(context.Background(), RegisterSupplierInput{
		SupplierName: "Widget Co",
		Email:        "Ops@WidgetCo.test",
		Password:     "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if repo.createdSupplier == nil || !repo.createdSupplier.IsActive {
		t.Fatal("expected active supplier created")
	}
	if repo.createdAccount == nil || repo.createdAccount.Email != "ops@widgetco.test" {
		t.Fatalf("expected normalized account email, got %+v", repo.createdAccount)
	}
	if repo.createdAccount.PasswordHash == "hunter2hunter2" {
		t.Fatal("password must be stored hashed")
	}
	if result.Role != enums.AccountRoleSupplier {
		t.Fatalf("expected supplier role got %s", result.Role)
	}
}
