package middleware

import (
	"testing"

	"gradebook/domain"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		required []domain.Role
		want     bool
	}{
		{"admin on admin route", domain.RoleAdmin, []domain.Role{domain.RoleAdmin}, true},
		{"student on admin route", domain.RoleStudent, []domain.Role{domain.RoleAdmin}, false},
		{"homeroom on teacher route", domain.RoleHomeroom, []domain.Role{domain.RoleTeacher, domain.RoleHomeroom}, true},
		{"teacher on homeroom route", domain.RoleTeacher, []domain.Role{domain.RoleHomeroom}, false},
		{"empty allow-list", domain.RoleAdmin, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.role, tt.required...); got != tt.want {
				t.Errorf("Allowed(%s, %v) = %v, want %v", tt.role, tt.required, got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	if _, ok := domain.ParseRole("principal"); ok {
		t.Error("unknown role must not parse")
	}
	r, ok := domain.ParseRole("homeroom")
	if !ok || r != domain.RoleHomeroom {
		t.Errorf("got %v %v, want homeroom true", r, ok)
	}
}
