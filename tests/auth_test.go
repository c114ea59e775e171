package tests

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	resp, result := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"username": "newuser",
		"password": "password123",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, result["token"])

	user := result["user"].(map[string]interface{})
	assert.Equal(t, "newuser", user["username"])
	assert.Equal(t, float64(1), user["level"])
	assert.Equal(t, float64(0), user["xp"])
	assert.Equal(t, float64(0), user["coin"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	newTestUser("taken", 0)

	resp, _ := doRequest(t, "POST", "/api/auth/register", "", map[string]string{
		"username": "taken",
		"password": "password123",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	cases := []map[string]string{
		{"username": "ab", "password": "password123"},        // too short
		{"username": "has spaces", "password": "password123"}, // bad characters
		{"username": "validname", "password": "short"},        // password too short
	}

	for i, body := range cases {
		resp, _ := doRequest(t, "POST", "/api/auth/register", "", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "case %d", i)
	}
}

func TestLogin(t *testing.T) {
	newTestUser("loginuser", 0)

	resp, result := doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"username": "loginuser",
		"password": "password",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, result["token"])
	assert.Equal(t, "loginuser", result["user"].(map[string]interface{})["username"])
}

func TestLoginWrongPassword(t *testing.T) {
	newTestUser("wrongpass", 0)

	resp, _ := doRequest(t, "POST", "/api/auth/login", "", map[string]string{
		"username": "wrongpass",
		"password": "not-the-password",
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMe(t *testing.T) {
	user, token := newTestUser("meuser", 42)

	resp, result := doRequest(t, "GET", "/api/auth/me", token, nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	me := result["user"].(map[string]interface{})
	assert.Equal(t, float64(user.ID), me["id"])
	assert.Equal(t, "meuser", me["username"])
	assert.Equal(t, float64(42), me["coin"])
	assert.Equal(t, float64(100), me["xp_next"])
	assert.Equal(t, "Novice", me["rank"])
}

func TestMeRequiresToken(t *testing.T) {
	resp, _ := doRequest(t, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	_, token := newTestUser("profileuser", 0)

	resp, result := doRequest(t, "PUT", "/api/user/profile", token, map[string]string{
		"bio":    "I love math",
		"avatar": "Ellipse_3",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "I love math", user["bio"])
	assert.Equal(t, "Ellipse_3.png", user["avatar"])
}

func TestUpdateProfileRejectsUnknownAvatar(t *testing.T) {
	_, token := newTestUser("profileuser2", 0)

	resp, _ := doRequest(t, "PUT", "/api/user/profile", token, map[string]string{
		"avatar": "Ellipse_99",
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
