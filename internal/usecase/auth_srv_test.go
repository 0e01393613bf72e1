package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
)

func newTestRepo() *repository.Repository {
	return repository.NewMemoryRepository(168*time.Hour, zap.NewNop())
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Email:     "Alice@Example.com",
		Password:  "correct-horse",
		FirstName: "Alice",
		LastName:  "Nguyen",
		Title:     "Ms",
	}
}

func TestAuthRegisterNormalizesEmail(t *testing.T) {
	repo := newTestRepo()
	svc := NewAuthService(repo, 168*time.Hour, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleCustomer, resp.Role)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), resp.ExpiresAt, time.Minute)
}

func TestAuthRegisterDuplicateEmailDiffersOnlyInCase(t *testing.T) {
	repo := newTestRepo()
	svc := NewAuthService(repo, 168*time.Hour, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	req := registerReq()
	req.Email = "ALICE@example.com"
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, entity.ErrDuplicateEmail)
}

func TestAuthLogin(t *testing.T) {
	repo := newTestRepo()
	svc := NewAuthService(repo, 168*time.Hour, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{
		Email:    "ALICE@EXAMPLE.COM",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	userID, ok := repo.Tokens.Resolve(resp.Token)
	require.True(t, ok)
	assert.Equal(t, resp.UserID, userID.String())
}

func TestAuthLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	repo := newTestRepo()
	svc := NewAuthService(repo, 168*time.Hour, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, errWrong := svc.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "nope"})
	_, errUnknown := svc.Login(ctx, &request.LoginRequest{Email: "bob@example.com", Password: "nope"})

	assert.ErrorIs(t, errWrong, entity.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, entity.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestAuthLoginSuspendedAccount(t *testing.T) {
	repo := newTestRepo()
	svc := NewAuthService(repo, 168*time.Hour, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	user, err := repo.User.FindByEmail(ctx, resp.Email)
	require.NoError(t, err)
	require.NoError(t, repo.User.UpdateStatus(ctx, user.ID, entity.UserStatusSuspended))

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, entity.ErrAccountDisabled)
}

func TestAuthLogoutRevokesToken(t *testing.T) {
	repo := newTestRepo()
	svc := NewAuthService(repo, 168*time.Hour, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))
	_, ok := repo.Tokens.Resolve(resp.Token)
	assert.False(t, ok)
}

func TestGuestAccountCannotLogIn(t *testing.T) {
	repo := newTestRepo()
	authSvc := NewAuthService(repo, 168*time.Hour, zap.NewNop())
	bookingSvc := newBookingService(repo)
	ctx := context.Background()

	_, err := bookingSvc.CreateBooking(ctx, nil, validBookingReq())
	require.NoError(t, err)

	_, err = authSvc.Login(ctx, &request.LoginRequest{Email: entity.GuestEmail, Password: "!"})
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestAdminUpdateUserStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewAuthService(repo, 168*time.Hour, zap.NewNop())
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	userID := uuid.MustParse(registered.UserID)

	updated, err := svc.AdminUpdateUserStatus(ctx, userID, entity.UserStatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusSuspended, updated.Status)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, entity.ErrAccountDisabled)

	_, err = svc.AdminUpdateUserStatus(ctx, userID, entity.UserStatusActive)
	require.NoError(t, err)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "alice@example.com", Password: "correct-horse"})
	assert.NoError(t, err)

	_, err = svc.AdminUpdateUserStatus(ctx, uuid.New(), entity.UserStatusBanned)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestAdminCannotChangeGuestAccountStatus(t *testing.T) {
	repo := newTestRepo()
	authSvc := NewAuthService(repo, 168*time.Hour, zap.NewNop())
	bookingSvc := newBookingService(repo)
	ctx := context.Background()

	_, err := bookingSvc.CreateBooking(ctx, nil, validBookingReq())
	require.NoError(t, err)

	guest, err := repo.User.FindByEmail(ctx, entity.GuestEmail)
	require.NoError(t, err)

	_, err = authSvc.AdminUpdateUserStatus(ctx, guest.ID, entity.UserStatusBanned)
	assert.ErrorIs(t, err, entity.ErrValidation)
}
