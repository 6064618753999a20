package validator

import (
	"strings"
	"testing"

	"github.com/l3blonde/grip-and-grin/internal/domain"
)

func TestValidateArticle(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   ArticleInput
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid article",
			input: ArticleInput{
				Title:   "Opening Day on the Lake",
				Content: "Full trip report.",
				Excerpt: "Trip report.",
			},
			wantErr: false,
		},
		{
			name: "empty excerpt is allowed",
			input: ArticleInput{
				Title:   "Opening Day on the Lake",
				Content: "Full trip report.",
			},
			wantErr: false,
		},
		{
			name: "excerpt at the limit",
			input: ArticleInput{
				Title:   "Opening Day on the Lake",
				Content: "Full trip report.",
				Excerpt: strings.Repeat("a", MaxExcerptLength),
			},
			wantErr: false,
		},
		{
			name: "missing title",
			input: ArticleInput{
				Content: "Full trip report.",
			},
			wantErr: true,
			errMsg:  "title",
		},
		{
			name: "missing content",
			input: ArticleInput{
				Title: "Opening Day on the Lake",
			},
			wantErr: true,
			errMsg:  "content",
		},
		{
			name: "excerpt over the limit",
			input: ArticleInput{
				Title:   "Opening Day on the Lake",
				Content: "Full trip report.",
				Excerpt: strings.Repeat("a", MaxExcerptLength+1),
			},
			wantErr: true,
			errMsg:  "excerpt",
		},
		{
			name:    "title is checked before content",
			input:   ArticleInput{},
			wantErr: true,
			errMsg:  "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateArticle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArticle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.errMsg != "" && err != nil {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateArticle() error = %v, should contain %v", err, tt.errMsg)
				}
				if !domain.IsValidation(err) {
					t.Errorf("ValidateArticle() error = %v, should be a validation error", err)
				}
			}
		})
	}
}

func TestValidateProfile(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		username string
		email    string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid profile",
			username: "angler",
			email:    "angler@example.com",
			wantErr:  false,
		},
		{
			name:     "username too short",
			username: "ab",
			email:    "angler@example.com",
			wantErr:  true,
			errMsg:   "username",
		},
		{
			name:     "missing email",
			username: "angler",
			email:    "",
			wantErr:  true,
			errMsg:   "email",
		},
		{
			name:     "invalid email format",
			username: "angler",
			email:    "not-an-email",
			wantErr:  true,
			errMsg:   "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateProfile(tt.username, tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.errMsg != "" && err != nil {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateProfile() error = %v, should contain %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid registration",
			username: "angler",
			email:    "angler@example.com",
			password: "Str0ngpass",
			wantErr:  false,
		},
		{
			name:     "missing username",
			username: "",
			email:    "angler@example.com",
			password: "Str0ngpass",
			wantErr:  true,
			errMsg:   "username",
		},
		{
			name:     "username too short",
			username: "ab",
			email:    "angler@example.com",
			password: "Str0ngpass",
			wantErr:  true,
			errMsg:   "username",
		},
		{
			name:     "missing email",
			username: "angler",
			email:    "",
			password: "Str0ngpass",
			wantErr:  true,
			errMsg:   "email",
		},
		{
			name:     "invalid email format",
			username: "angler",
			email:    "not-an-email",
			password: "Str0ngpass",
			wantErr:  true,
			errMsg:   "email",
		},
		{
			name:     "password too short",
			username: "angler",
			email:    "angler@example.com",
			password: "Str0ng1",
			wantErr:  true,
			errMsg:   "password",
		},
		{
			name:     "password without uppercase",
			username: "angler",
			email:    "angler@example.com",
			password: "str0ngpass",
			wantErr:  true,
			errMsg:   "password",
		},
		{
			name:     "password without lowercase",
			username: "angler",
			email:    "angler@example.com",
			password: "STR0NGPASS",
			wantErr:  true,
			errMsg:   "password",
		},
		{
			name:     "password without digit",
			username: "angler",
			email:    "angler@example.com",
			password: "Strongpass",
			wantErr:  true,
			errMsg:   "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegistration(tt.username, tt.email, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tt.errMsg != "" && err != nil {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateRegistration() error = %v, should contain %v", err, tt.errMsg)
				}
				if !domain.IsValidation(err) {
					t.Errorf("ValidateRegistration() error = %v, should be a validation error", err)
				}
			}
		})
	}
}
