package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentnest/internal/domain/entity"
	"rentnest/pkg/errors"
)

func newAuthFixture() (*AuthUseCase, *fakeUserRepo, *fakeMailer) {
	users := newFakeUserRepo()
	mailer := &fakeMailer{}
	return NewAuthUseCase(users, fakeTokenManager{}, mailer), users, mailer
}

func storedOTP(t *testing.T, users *fakeUserRepo, email string) string {
	t.Helper()
	user, err := users.GetByEmail(context.Background(), email)
	require.NoError(t, err)
	require.NotEmpty(t, user.OTP)
	return user.OTP
}

func TestSendRegistrationOTP(t *testing.T) {
	uc, users, mailer := newAuthFixture()
	ctx := context.Background()

	err := uc.SendRegistrationOTP(ctx, RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		UserType:  entity.UserTypeTenant,
	})
	require.NoError(t, err)

	user, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, user.IsVerified)
	assert.Len(t, user.OTP, 6)
	assert.True(t, user.OTPExpires.After(time.Now()))

	assert.Eventually(t, func() bool { return mailer.count() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "ada@example.com", mailer.last().to)
	assert.Contains(t, mailer.last().body, user.OTP)
}

func TestSendRegistrationOTPResendReplacesCode(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	input := RegisterInput{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", UserType: entity.UserTypeTenant}
	require.NoError(t, uc.SendRegistrationOTP(ctx, input))
	storedOTP(t, users, "ada@example.com")

	input.UserType = entity.UserTypeOwner
	require.NoError(t, uc.SendRegistrationOTP(ctx, input))

	user, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeOwner, user.UserType)
	assert.NotEmpty(t, user.OTP)
	assert.True(t, user.OTPExpires.After(time.Now()))
}

func TestSendRegistrationOTPRejectsVerifiedEmail(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &entity.User{
		Email:      "taken@example.com",
		UserType:   entity.UserTypeTenant,
		IsVerified: true,
	}))

	err := uc.SendRegistrationOTP(ctx, RegisterInput{
		FirstName: "Eve",
		Email:     "taken@example.com",
		UserType:  entity.UserTypeTenant,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Contains(t, err.Error(), "Email already registered")
}

func TestSendRegistrationOTPRejectsInvalidUserType(t *testing.T) {
	uc, _, _ := newAuthFixture()

	err := uc.SendRegistrationOTP(context.Background(), RegisterInput{
		Email:    "ada@example.com",
		UserType: entity.UserType("landlord"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestVerifyRegistrationOTP(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, uc.SendRegistrationOTP(ctx, RegisterInput{
		FirstName: "Ada", Email: "ada@example.com", UserType: entity.UserTypeTenant,
	}))
	otp := storedOTP(t, users, "ada@example.com")

	result, err := uc.VerifyRegistrationOTP(ctx, "ada@example.com", otp)
	require.NoError(t, err)
	assert.True(t, result.User.IsVerified)
	assert.Equal(t, "token-"+result.User.ID, result.Token)

	// The code is consumed and the account cannot be re-verified.
	stored, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Empty(t, stored.OTP)

	_, err = uc.VerifyRegistrationOTP(ctx, "ada@example.com", otp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User already verified")
}

func TestVerifyRegistrationOTPWrongCode(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, uc.SendRegistrationOTP(ctx, RegisterInput{
		Email: "ada@example.com", UserType: entity.UserTypeTenant,
	}))
	otp := storedOTP(t, users, "ada@example.com")

	wrong := "000000"
	if wrong == otp {
		wrong = "000001"
	}
	_, err := uc.VerifyRegistrationOTP(ctx, "ada@example.com", wrong)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid OTP")
}

func TestVerifyRegistrationOTPExpired(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, uc.SendRegistrationOTP(ctx, RegisterInput{
		Email: "ada@example.com", UserType: entity.UserTypeTenant,
	}))

	user, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	user.OTPExpires = time.Now().Add(-time.Minute)
	require.NoError(t, users.Update(ctx, user))

	_, err = uc.VerifyRegistrationOTP(ctx, "ada@example.com", user.OTP)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OTP has expired")
}

func TestVerifyRegistrationOTPUnknownEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.VerifyRegistrationOTP(context.Background(), "nobody@example.com", "123456")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSendLoginOTP(t *testing.T) {
	uc, users, mailer := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &entity.User{
		Email:      "ada@example.com",
		UserType:   entity.UserTypeTenant,
		IsVerified: true,
	}))

	require.NoError(t, uc.SendLoginOTP(ctx, "ada@example.com"))
	otp := storedOTP(t, users, "ada@example.com")
	assert.Len(t, otp, 6)

	assert.Eventually(t, func() bool { return mailer.count() == 1 }, time.Second, 10*time.Millisecond)
	assert.Contains(t, mailer.last().body, otp)
}

func TestSendLoginOTPUnknownEmail(t *testing.T) {
	uc, _, _ := newAuthFixture()

	err := uc.SendLoginOTP(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Contains(t, err.Error(), "Please register instead")
}

func TestSendLoginOTPUnverifiedAccount(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &entity.User{
		Email:    "pending@example.com",
		UserType: entity.UserTypeTenant,
	}))

	err := uc.SendLoginOTP(ctx, "pending@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestVerifyLoginOTP(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &entity.User{
		Email:      "ada@example.com",
		UserType:   entity.UserTypeTenant,
		IsVerified: true,
	}))
	require.NoError(t, uc.SendLoginOTP(ctx, "ada@example.com"))
	otp := storedOTP(t, users, "ada@example.com")

	result, err := uc.VerifyLoginOTP(ctx, "ada@example.com", otp)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	// Single use: the same code is rejected on replay.
	_, err = uc.VerifyLoginOTP(ctx, "ada@example.com", otp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid OTP")
}

func TestGoogleAuthCreatesVerifiedUser(t *testing.T) {
	uc, users, mailer := newAuthFixture()
	ctx := context.Background()

	result, err := uc.GoogleAuth(ctx, GoogleAuthInput{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		GoogleID:  "google-sub-1",
		UserType:  entity.UserTypeOwner,
	})
	require.NoError(t, err)
	assert.True(t, result.User.IsVerified)
	assert.Equal(t, entity.UserTypeOwner, result.User.UserType)
	assert.NotEmpty(t, result.Token)

	// No OTP challenge on the Google path.
	assert.Equal(t, 0, mailer.count())

	stored, err := users.GetByGoogleID(ctx, "google-sub-1")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, stored.ID)
}

func TestGoogleAuthReturningUser(t *testing.T) {
	uc, _, _ := newAuthFixture()
	ctx := context.Background()

	first, err := uc.GoogleAuth(ctx, GoogleAuthInput{
		Email: "ada@example.com", FirstName: "Ada", GoogleID: "google-sub-1", UserType: entity.UserTypeTenant,
	})
	require.NoError(t, err)

	second, err := uc.GoogleAuth(ctx, GoogleAuthInput{
		Email: "ada@example.com", FirstName: "Augusta", GoogleID: "google-sub-1", UserType: entity.UserTypeOwner,
	})
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, "Augusta", second.User.FirstName)
	// The account type is fixed at creation.
	assert.Equal(t, entity.UserTypeTenant, second.User.UserType)
}

func TestGoogleAuthRejectsEmailHeldByOTPAccount(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &entity.User{
		Email:      "ada@example.com",
		UserType:   entity.UserTypeTenant,
		IsVerified: true,
	}))

	_, err := uc.GoogleAuth(ctx, GoogleAuthInput{
		Email: "ada@example.com", GoogleID: "google-sub-1", UserType: entity.UserTypeTenant,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Contains(t, err.Error(), "Please log in with your email")
}

func TestGoogleAuthAdoptsNewSubjectForGoogleAccount(t *testing.T) {
	uc, users, _ := newAuthFixture()
	ctx := context.Background()

	first, err := uc.GoogleAuth(ctx, GoogleAuthInput{
		Email: "ada@example.com", GoogleID: "stale-sub", UserType: entity.UserTypeTenant,
	})
	require.NoError(t, err)

	second, err := uc.GoogleAuth(ctx, GoogleAuthInput{
		Email: "ada@example.com", GoogleID: "fresh-sub", UserType: entity.UserTypeTenant,
	})
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)

	stored, err := users.GetByGoogleID(ctx, "fresh-sub")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, stored.ID)
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp, err := generateOTP()
		require.NoError(t, err)
		assert.Len(t, otp, 6)
		for _, c := range otp {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}
