package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/hotelops/hotel-operations/internal/auth"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Suite")
}

type mockUserRepository struct {
	usersByEmail map[string]*auth.UserInfo
	usersByID    map[int64]*auth.UserInfo
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		usersByEmail: make(map[string]*auth.UserInfo),
		usersByID:    make(map[int64]*auth.UserInfo),
	}
}

func (m *mockUserRepository) add(u *auth.UserInfo) {
	m.usersByEmail[u.Email] = u
	m.usersByID[u.ID] = u
}

func (m *mockUserRepository) GetByEmail(email string) (*auth.UserInfo, error) {
	u, ok := m.usersByEmail[email]
	if !ok {
		return nil, auth.ErrInvalidCredentials
	}
	return u, nil
}

func (m *mockUserRepository) GetByID(id int64) (*auth.UserInfo, error) {
	u, ok := m.usersByID[id]
	if !ok {
		return nil, auth.ErrInvalidToken
	}
	return u, nil
}

var _ = Describe("AuthService", func() {
	var (
		svc      *auth.Service
		mockRepo *mockUserRepository
		tokenGen *auth.JWTTokenGenerator
	)

	hash := func(password string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		return string(h)
	}

	BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = auth.NewJWTTokenGenerator("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		svc = auth.NewService(mockRepo, tokenGen, logger)

		mockRepo.add(&auth.UserInfo{
			ID:           1,
			Email:        "staff@hotelops.test",
			Name:         "Staff Member",
			PasswordHash: hash("password"),
			Role:         auth.RoleStaff,
			IsActive:     true,
		})
		mockRepo.add(&auth.UserInfo{
			ID:           2,
			Email:        "former@hotelops.test",
			Name:         "Former Employee",
			PasswordHash: hash("password"),
			Role:         auth.RoleStaff,
			IsActive:     false,
		})
	})

	Describe("Authenticate", func() {
		It("should return tokens for valid credentials", func() {
			tokens, err := svc.Authenticate(auth.LoginDTO{
				Email:    "staff@hotelops.test",
				Password: "password",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())

			claims, err := tokenGen.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(int64(1)))
			Expect(claims.Email).To(Equal("staff@hotelops.test"))
		})

		It("should reject a wrong password", func() {
			_, err := svc.Authenticate(auth.LoginDTO{
				Email:    "staff@hotelops.test",
				Password: "not-the-password",
			})

			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("should reject an unknown email", func() {
			_, err := svc.Authenticate(auth.LoginDTO{
				Email:    "nobody@hotelops.test",
				Password: "password",
			})

			Expect(err).To(Equal(auth.ErrInvalidCredentials))
		})

		It("should reject a deactivated account even with correct credentials", func() {
			_, err := svc.Authenticate(auth.LoginDTO{
				Email:    "former@hotelops.test",
				Password: "password",
			})

			Expect(err).To(Equal(auth.ErrUserInactive))
		})

		It("should reject an empty payload before touching storage", func() {
			_, err := svc.Authenticate(auth.LoginDTO{})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("email"))
		})
	})

	Describe("RefreshTokens", func() {
		It("should issue a fresh pair for a valid refresh token", func() {
			tokens, err := svc.Authenticate(auth.LoginDTO{
				Email:    "staff@hotelops.test",
				Password: "password",
			})
			Expect(err).NotTo(HaveOccurred())

			renewed, err := svc.RefreshTokens(tokens.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(renewed.AccessToken).NotTo(BeEmpty())
			Expect(renewed.RefreshToken).NotTo(BeEmpty())
		})

		It("should reject an access token used as a refresh token", func() {
			tokens, err := svc.Authenticate(auth.LoginDTO{
				Email:    "staff@hotelops.test",
				Password: "password",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.RefreshTokens(tokens.AccessToken)
			Expect(err).To(Equal(auth.ErrInvalidToken))
		})

		It("should reject garbage", func() {
			_, err := svc.RefreshTokens("not-a-token")
			Expect(err).To(Equal(auth.ErrInvalidToken))
		})

		It("should reject a refresh for a deactivated account", func() {
			refresh, err := tokenGen.GenerateRefreshToken(2, "former@hotelops.test")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.RefreshTokens(refresh)
			Expect(err).To(Equal(auth.ErrUserInactive))
		})
	})

	Describe("ResolvePrincipal", func() {
		It("should map claims to the stored account", func() {
			p, err := svc.ResolvePrincipal(&auth.Claims{UserID: 1, Email: "staff@hotelops.test"})

			Expect(err).NotTo(HaveOccurred())
			Expect(p.ID).To(Equal(int64(1)))
			Expect(p.Role).To(Equal(auth.RoleStaff))
		})

		It("should reject a still-valid token for a deactivated account", func() {
			_, err := svc.ResolvePrincipal(&auth.Claims{UserID: 2, Email: "former@hotelops.test"})

			Expect(err).To(Equal(auth.ErrUserInactive))
		})
	})

	Describe("JWTTokenGenerator", func() {
		It("should reject an expired token", func() {
			shortLived := auth.NewJWTTokenGenerator("access-secret", "refresh-secret", time.Nanosecond, time.Nanosecond)
			token, err := shortLived.GenerateAccessToken(1, "staff@hotelops.test")
			Expect(err).NotTo(HaveOccurred())

			time.Sleep(10 * time.Millisecond)

			_, err = shortLived.ValidateAccessToken(token)
			Expect(err).To(Equal(auth.ErrTokenExpired))
		})

		It("should reject a token signed with a different secret", func() {
			other := auth.NewJWTTokenGenerator("other-secret", "other-refresh", 15*time.Minute, 24*time.Hour)
			token, err := other.GenerateAccessToken(1, "staff@hotelops.test")
			Expect(err).NotTo(HaveOccurred())

			_, err = tokenGen.ValidateAccessToken(token)
			Expect(err).To(Equal(auth.ErrInvalidToken))
		})
	})
})
