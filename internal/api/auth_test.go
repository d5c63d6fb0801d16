package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupThenLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, "POST", "/api/auth/signup",
		`{"name":"A","email":"a@x.com","password":"p","studentId":"FA21-001","phone":"0300"}`, "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	rec = ts.doJSON(t, "POST", "/api/auth/login", `{"email":"a@x.com","password":"p"}`, "")
	require.Equal(t, 200, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "FA21-001", user["student_id"])

	// Same credentials must resolve to the same account
	firstID, _ := ts.login(t, "a@x.com", "p")
	secondID, _ := ts.login(t, "a@x.com", "p")
	assert.Equal(t, firstID, secondID)
}

func TestLoginRejections(t *testing.T) {
	ts := newTestServer(t)
	ts.signupUser(t, "A", "a@x.com", "p")

	tests := []struct {
		name         string
		payload      string
		expectedCode int
	}{
		{"wrong_password", `{"email":"a@x.com","password":"wrong"}`, 401},
		{"unknown_email", `{"email":"nobody@x.com","password":"p"}`, 401},
		{"missing_password", `{"email":"a@x.com"}`, 400},
		{"missing_email", `{"password":"p"}`, 400},
		{"bad_json", `not json`, 400},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := ts.doJSON(t, "POST", "/api/auth/login", testCase.payload, "")
			assert.Equal(t, testCase.expectedCode, rec.Code)
			assert.Equal(t, false, decode(t, rec)["success"])
		})
	}
}

func TestSignupValidation(t *testing.T) {
	ts := newTestServer(t)
	ts.signupUser(t, "A", "taken@x.com", "p")

	tests := []struct {
		name            string
		payload         string
		expectedCode    int
		expectedMessage string
	}{
		{"duplicate_email", `{"name":"B","email":"taken@x.com","password":"other"}`, 400, "Email already exists"},
		{"missing_name", `{"email":"b@x.com","password":"p"}`, 400, "Name, email, and password are required"},
		{"missing_email", `{"name":"B","password":"p"}`, 400, "Name, email, and password are required"},
		{"missing_password", `{"name":"B","email":"b@x.com"}`, 400, "Name, email, and password are required"},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := ts.doJSON(t, "POST", "/api/auth/signup", testCase.payload, "")
			assert.Equal(t, testCase.expectedCode, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, testCase.expectedMessage, body["message"])
		})
	}
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.doJSON(t, "POST", "/api/auth/logout", "", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "Logged out successfully", decode(t, rec)["message"])
}

func TestSignupNeverGrantsElevatedRole(t *testing.T) {
	ts := newTestServer(t)
	// Role is fixed server-side; a trailing role field must be ignored
	rec := ts.doJSON(t, "POST", "/api/auth/signup",
		`{"name":"Sneaky","email":"sneaky@x.com","password":"p","role":"admin"}`, "")
	require.Equal(t, 200, rec.Code)

	rec = ts.doJSON(t, "POST", "/api/auth/login", `{"email":"sneaky@x.com","password":"p"}`, "")
	require.Equal(t, 200, rec.Code)
	user := decode(t, rec)["user"].(map[string]any)
	assert.Equal(t, "user", user["role"])
}
