package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tablehost/gin-booking-api/internal/models"
)

const testJWTSecret = "test-jwt-secret-key-32-characters"

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	service := NewAuthService(db, testJWTSecret)

	hash, err := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{
		Email:    "customer@example.com",
		Password: string(hash),
		Name:     "Demo Customer",
		Role:     models.RoleCustomer,
	}
	require.NoError(t, db.Create(&user).Error)

	t.Run("valid credentials", func(t *testing.T) {
		loggedIn, token, err := service.Login("customer@example.com", "customer123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)
		assert.Equal(t, models.RoleCustomer, loggedIn.Role)

		// The session token is a verifiable JWT carrying the user id
		parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "1", claims["uid"])
		assert.Equal(t, models.RoleCustomer, claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login("customer@example.com", "nope")
		var authErr *models.AuthError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := service.Login("ghost@example.com", "whatever")
		var authErr *models.AuthError
		assert.ErrorAs(t, err, &authErr)
	})
}
