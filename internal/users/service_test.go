package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Yackxz2004/Estadia-Banquetes/pkg/config"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/enums"
	pkgerrors "github.com/Yackxz2004/Estadia-Banquetes/pkg/errors"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/security"
)

// Weak argon2 parameters keep hashing fast under test.
var testPasswordConfig = config.PasswordConfig{
	ArgonMemoryKB:    8,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

func TestCreateUserHashesPassword(t *testing.T) {
	t.Parallel()

	svc := newService(t, newTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{
		Email:     "  Lucia@Banquetes.MX ",
		Password:  "contraseña-segura",
		FirstName: "Lucía",
		LastName:  "Fernández",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Email != "lucia@banquetes.mx" {
		t.Fatalf("email not normalized: %q", created.Email)
	}
	if created.Role != enums.UserRoleStaff {
		t.Fatalf("expected staff default role, got %q", created.Role)
	}
	if !created.IsActive {
		t.Fatal("expected active account")
	}

	ok, err := security.VerifyPassword("contraseña-segura", created.PasswordHash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("stored hash does not verify")
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newService(t, newTestDB(t))
	ctx := context.Background()

	input := CreateUserInput{
		Email:     "lucia@banquetes.mx",
		Password:  "contraseña-segura",
		FirstName: "Lucía",
		LastName:  "Fernández",
	}
	if _, err := svc.Create(ctx, input); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.Create(ctx, input)
	if err == nil {
		t.Fatal("expected duplicate email error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	t.Parallel()

	svc := newService(t, newTestDB(t))
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateUserInput
	}{
		{"missing email", CreateUserInput{Password: "contraseña-segura"}},
		{"short password", CreateUserInput{Email: "lucia@banquetes.mx", Password: "corta"}},
		{"unknown role", CreateUserInput{
			Email:    "lucia@banquetes.mx",
			Password: "contraseña-segura",
			Role:     enums.UserRole("gerente"),
		}},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc.input)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestUpdateUserDeactivatesAndResetsPassword(t *testing.T) {
	t.Parallel()

	svc := newService(t, newTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{
		Email:     "lucia@banquetes.mx",
		Password:  "contraseña-segura",
		FirstName: "Lucía",
		LastName:  "Fernández",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	inactive := false
	newPassword := "otra-contraseña"
	adminRole := enums.UserRoleAdmin
	updated, err := svc.Update(ctx, created.ID, UpdateUserInput{
		IsActive: &inactive,
		Password: &newPassword,
		Role:     &adminRole,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.IsActive {
		t.Fatal("expected deactivated account")
	}
	if updated.Role != enums.UserRoleAdmin {
		t.Fatalf("role not updated: %q", updated.Role)
	}
	ok, err := security.VerifyPassword(newPassword, updated.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("new password does not verify: ok=%v err=%v", ok, err)
	}
}

func TestDeleteUserRejectsSelf(t *testing.T) {
	t.Parallel()

	svc := newService(t, newTestDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{
		Email:     "lucia@banquetes.mx",
		Password:  "contraseña-segura",
		FirstName: "Lucía",
		LastName:  "Fernández",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.Delete(ctx, created.ID, created.ID)
	if err == nil {
		t.Fatal("expected self-delete rejection")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("unexpected error: %v", err)
	}

	other, err := svc.Create(ctx, CreateUserInput{
		Email:     "karla@banquetes.mx",
		Password:  "contraseña-segura",
		FirstName: "Karla",
		LastName:  "Ríos",
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if err := svc.Delete(ctx, created.ID, other.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, other.ID); err == nil {
		t.Fatal("expected deleted account to be gone")
	}
}

func TestListUsersSortedByEmail(t *testing.T) {
	t.Parallel()

	svc := newService(t, newTestDB(t))
	ctx := context.Background()

	for _, email := range []string{"karla@banquetes.mx", "ana@banquetes.mx"} {
		_, err := svc.Create(ctx, CreateUserInput{
			Email:     email,
			Password:  "contraseña-segura",
			FirstName: "Prueba",
			LastName:  "Prueba",
		})
		if err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].Email != "ana@banquetes.mx" {
		t.Fatalf("unexpected order: %+v", listed)
	}
}

func newService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(db), testPasswordConfig)
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	return svc
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:users_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
