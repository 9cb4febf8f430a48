package usecase

import (
	"testing"
	"time"

	authdomain "naturemillets-backend/internal/auth/domain"
	authdto "naturemillets-backend/internal/auth/dto"
	"naturemillets-backend/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	usersByEmail  map[string]*authdomain.User
	usersByID     map[string]*authdomain.User
	refreshTokens map[string]*authdomain.RefreshToken
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByEmail:  make(map[string]*authdomain.User),
		usersByID:     make(map[string]*authdomain.User),
		refreshTokens: make(map[string]*authdomain.RefreshToken),
	}
}

func (m *mockUserRepo) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	m.usersByEmail[user.Email] = user
	m.usersByID[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	return m.usersByEmail[email], nil
}

func (m *mockUserRepo) FindByID(id string) (*authdomain.User, error) {
	return m.usersByID[id], nil
}

func (m *mockUserRepo) Update(user *authdomain.User) error { return nil }

func (m *mockUserRepo) CountUsers() (int64, error) {
	return int64(len(m.usersByID)), nil
}

func (m *mockUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error {
	m.refreshTokens[token.Token] = token
	return nil
}

func (m *mockUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return m.refreshTokens[token], nil
}

func (m *mockUserRepo) DeleteRefreshToken(token string) error {
	delete(m.refreshTokens, token)
	return nil
}

func (m *mockUserRepo) DeleteRefreshTokensByUser(userID string) error {
	for token, row := range m.refreshTokens {
		if row.UserID == userID {
			delete(m.refreshTokens, token)
		}
	}
	return nil
}

type mockDeviceRepo struct {
	tokens map[string]string // token -> userID
}

func (m *mockDeviceRepo) SaveToken(userID, token, deviceInfo string) error {
	m.tokens[token] = userID
	return nil
}

func (m *mockDeviceRepo) GetTokensByUserID(userID string) ([]authdomain.DeviceToken, error) {
	var out []authdomain.DeviceToken
	for token, uid := range m.tokens {
		if uid == userID {
			out = append(out, authdomain.DeviceToken{Token: token, UserID: uid})
		}
	}
	return out, nil
}

func (m *mockDeviceRepo) DeleteToken(token string) error {
	delete(m.tokens, token)
	return nil
}

func (m *mockDeviceRepo) DeleteTokensByUserID(userID string) error {
	for token, uid := range m.tokens {
		if uid == userID {
			delete(m.tokens, token)
		}
	}
	return nil
}

func newAuthFixture() (AuthUsecase, *mockUserRepo) {
	repo := newMockUserRepo()
	devices := &mockDeviceRepo{tokens: make(map[string]string)}
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
	return NewAuthUsecase(repo, devices, cfg), repo
}

func signUp(t *testing.T, uc AuthUsecase) *authdto.TokenResponse {
	t.Helper()
	resp, err := uc.SignUp(&authdto.SignUpRequest{
		Email:    "asha@example.com",
		Password: "secret123",
		Username: "asha",
	})
	require.NoError(t, err)
	return resp
}

func TestSignUpIssuesTokenPair(t *testing.T) {
	uc, repo := newAuthFixture()

	resp := signUp(t, uc)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "customer", resp.User.Role)
	assert.NotEmpty(t, repo.refreshTokens[resp.RefreshToken])
}

func TestSignUpDuplicateEmail(t *testing.T) {
	uc, _ := newAuthFixture()
	signUp(t, uc)

	_, err := uc.SignUp(&authdto.SignUpRequest{
		Email:    "asha@example.com",
		Password: "another",
		Username: "asha2",
	})

	assert.Error(t, err)
}

func TestSignInWithCorrectPassword(t *testing.T) {
	uc, _ := newAuthFixture()
	signUp(t, uc)

	resp, err := uc.SignIn(&authdto.SignInRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestSignInWrongPassword(t *testing.T) {
	uc, _ := newAuthFixture()
	signUp(t, uc)

	_, err := uc.SignIn(&authdto.SignInRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})

	assert.Error(t, err)
}

func TestRefreshTokenRotates(t *testing.T) {
	uc, repo := newAuthFixture()
	first := signUp(t, uc)

	second, err := uc.RefreshToken(first.RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Nil(t, repo.refreshTokens[first.RefreshToken])
	assert.NotNil(t, repo.refreshTokens[second.RefreshToken])

	// The rotated-out token must not be honored again.
	_, err = uc.RefreshToken(first.RefreshToken)
	assert.Error(t, err)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.RefreshToken("not-a-jwt")

	assert.Error(t, err)
}

func TestRefreshTokenRejectsUnknownToken(t *testing.T) {
	uc, repo := newAuthFixture()
	resp := signUp(t, uc)

	// Signed correctly but no longer stored (e.g. logged out elsewhere).
	require.NoError(t, repo.DeleteRefreshToken(resp.RefreshToken))

	_, err := uc.RefreshToken(resp.RefreshToken)
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	uc, _ := newAuthFixture()
	resp := signUp(t, uc)

	user, err := uc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)

	_, err = uc.ValidateToken("garbage")
	assert.Error(t, err)
}

func TestLogoutDeletesRefreshToken(t *testing.T) {
	uc, repo := newAuthFixture()
	resp := signUp(t, uc)

	require.NoError(t, uc.Logout(resp.RefreshToken))

	assert.Nil(t, repo.refreshTokens[resp.RefreshToken])
}
