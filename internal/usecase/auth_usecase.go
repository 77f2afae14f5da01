package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"rentnest/internal/domain/entity"
	"rentnest/internal/domain/repository"
	"rentnest/pkg/errors"
	"rentnest/pkg/logger"
)

const otpTTL = 10 * time.Minute

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenManager
	mailer   Mailer
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenManager, mailer Mailer) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	UserType  entity.UserType
}

type GoogleAuthInput struct {
	Email     string
	FirstName string
	LastName  string
	GoogleID  string
	UserType  entity.UserType
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// SendRegistrationOTP upserts an unverified user and dispatches a fresh
// one-time code. A verified user already holding the email is rejected.
func (uc *AuthUseCase) SendRegistrationOTP(ctx context.Context, input RegisterInput) error {
	if !input.UserType.Valid() {
		return errors.BadRequest("Invalid user type", nil)
	}

	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return err
	}

	if user != nil && user.IsVerified {
		return errors.BadRequest("Email already registered", nil)
	}

	otp, err := generateOTP()
	if err != nil {
		return errors.Internal("Failed to generate OTP", err)
	}

	if user != nil {
		user.FirstName = input.FirstName
		user.LastName = input.LastName
		user.UserType = input.UserType
		user.OTP = otp
		user.OTPExpires = time.Now().Add(otpTTL)
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return err
		}
	} else {
		user = &entity.User{
			FirstName:  input.FirstName,
			LastName:   input.LastName,
			Email:      input.Email,
			UserType:   input.UserType,
			OTP:        otp,
			OTPExpires: time.Now().Add(otpTTL),
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}
	}

	uc.dispatchOTP(user.Email, "Your Registration OTP",
		fmt.Sprintf("Your OTP for registration is: %s\nThis code will expire in 10 minutes.", otp))

	return nil
}

func (uc *AuthUseCase) VerifyRegistrationOTP(ctx context.Context, email, otp string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("User", nil)
		}
		return nil, err
	}

	if user.IsVerified {
		return nil, errors.BadRequest("User already verified", nil)
	}
	if err := checkOTP(user, otp); err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.OTP = ""
	user.OTPExpires = time.Time{}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueSession(user)
}

// SendLoginOTP issues a code to an existing verified account.
func (uc *AuthUseCase) SendLoginOTP(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return err
	}
	if user == nil || !user.IsVerified {
		return errors.New("NOT_FOUND", "No account found with this email. Please register instead.", 404, nil)
	}

	otp, err := generateOTP()
	if err != nil {
		return errors.Internal("Failed to generate OTP", err)
	}

	user.OTP = otp
	user.OTPExpires = time.Now().Add(otpTTL)
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	uc.dispatchOTP(user.Email, "Your Login OTP",
		fmt.Sprintf("Your Login OTP is: %s\nThis code will expire in 10 minutes.", otp))

	return nil
}

func (uc *AuthUseCase) VerifyLoginOTP(ctx context.Context, email, otp string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("User", nil)
		}
		return nil, err
	}

	if err := checkOTP(user, otp); err != nil {
		return nil, err
	}

	user.OTP = ""
	user.OTPExpires = time.Time{}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueSession(user)
}

// GoogleAuth reuses the account matched by provider subject id, or creates a
// pre-verified one. The OTP challenge is skipped entirely: the provider
// already vouches for the email.
func (uc *AuthUseCase) GoogleAuth(ctx context.Context, input GoogleAuthInput) (*AuthResult, error) {
	if !input.UserType.Valid() {
		return nil, errors.BadRequest("Invalid user type", nil)
	}

	user, err := uc.userRepo.GetByGoogleID(ctx, input.GoogleID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if user != nil {
		user.FirstName = input.FirstName
		user.LastName = input.LastName
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		return uc.issueSession(user)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if existing != nil {
		if existing.GoogleID == "" {
			return nil, errors.BadRequest("Email already registered. Please log in with your email.", nil)
		}
		// Same email, stale subject id: adopt the new one.
		existing.GoogleID = input.GoogleID
		existing.FirstName = input.FirstName
		existing.LastName = input.LastName
		if err := uc.userRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return uc.issueSession(existing)
	}

	user = &entity.User{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		GoogleID:   input.GoogleID,
		UserType:   input.UserType,
		IsVerified: true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueSession(user)
}

func (uc *AuthUseCase) issueSession(user *entity.User) (*AuthResult, error) {
	token, err := uc.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func checkOTP(user *entity.User, otp string) error {
	if user.OTP == "" || user.OTP != otp {
		return errors.BadRequest("Invalid OTP", nil)
	}
	if time.Now().After(user.OTPExpires) {
		return errors.BadRequest("OTP has expired", nil)
	}
	return nil
}

// dispatchOTP fires the email off in the background. Issuing an OTP reports
// success to the caller even when delivery fails; the failure is only logged.
func (uc *AuthUseCase) dispatchOTP(email, subject, body string) {
	go func() {
		if err := uc.mailer.Send(email, subject, body); err != nil {
			logger.Error("Failed to send OTP email to %s: %v", email, err)
		}
	}()
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
