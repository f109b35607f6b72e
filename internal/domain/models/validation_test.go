// File: internal/domain/models/validation_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		Username:        "validuser",
		Name:            "Valid User",
		Email:           "valid@example.com",
		Password:        "Password1",
		ConfirmPassword: "Password1",
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr bool
	}{
		{"valid", func(r *RegisterRequest) {}, false},
		{"username at min length", func(r *RegisterRequest) { r.Username = "abcde" }, false},
		{"username too short", func(r *RegisterRequest) { r.Username = "abcd" }, true},
		{"username too long", func(r *RegisterRequest) { r.Username = "abcdefghijabcdefghijabcdefghijx" }, true},
		{"name missing", func(r *RegisterRequest) { r.Name = "" }, true},
		{"name too long", func(r *RegisterRequest) { r.Name = "abcdefghijabcdefghijabcdefghijx" }, true},
		{"email missing at sign", func(r *RegisterRequest) { r.Email = "valid.example.com" }, true},
		{"email missing tld", func(r *RegisterRequest) { r.Email = "valid@example" }, true},
		{"confirm mismatch", func(r *RegisterRequest) { r.ConfirmPassword = "Password2" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordRules(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"Password1", true},
		{"aB1aB1aB", true},
		{"Abcdefghijklmnopqrstu1234", true},  // 25 chars, upper bound
		{"Abcdefghijklmnopqrstu12345", false}, // 26 chars
		{"Pass1", false},                      // too short
		{"password1", false},                  // no uppercase
		{"PASSWORD1", false},                  // no lowercase
		{"Passwords", false},                  // no digit
		{"Password1!", false},                 // symbol not allowed
		{"Pass word1", false},                 // space not allowed
	}

	for _, tc := range cases {
		t.Run(tc.password, func(t *testing.T) {
			req := validRegister()
			req.Password = tc.password
			req.ConfirmPassword = tc.password
			err := req.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUserToResponseOmitsPasswordHash(t *testing.T) {
	u := User{Username: "someuser", PasswordHash: "secret-hash"}
	resp := u.ToResponse()
	assert.Equal(t, "someuser", resp.Username)
	// The response type has no field that could carry the hash; this test
	// documents that the projection is the only thing handlers return.
	assert.NotContains(t, []interface{}{resp.ID, resp.Username, resp.Name, resp.Email}, "secret-hash")
}

func TestCreateBlogRequestValidate(t *testing.T) {
	assert.NoError(t, CreateBlogRequest{Title: "t", Content: "c"}.Validate())
	assert.Error(t, CreateBlogRequest{Title: "", Content: "c"}.Validate())
	assert.Error(t, CreateBlogRequest{Title: "t", Content: ""}.Validate())
}

func TestCreateCommentRequestValidate(t *testing.T) {
	assert.NoError(t, CreateCommentRequest{Content: "c"}.Validate())
	assert.Error(t, CreateCommentRequest{Content: ""}.Validate())
}
