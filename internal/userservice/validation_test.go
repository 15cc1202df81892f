package userservice

import (
	"testing"

	"github.com/reikohana/inkstone/internal/common"
)

func TestValidateFullname(t *testing.T) {
	testCases := []struct {
		fullname string
		valid    bool
	}{
		{fullname: "", valid: false},
		{fullname: "a", valid: false},
		{fullname: "ab", valid: false},
		{fullname: "abc", valid: true},
		{fullname: "Jane Doe", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.fullname, func(t *testing.T) {
			v := common.NewValidator()
			validateFullname(v, tc.fullname)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		email string
		valid bool
	}{
		{email: "", valid: false},
		{email: "a", valid: false},
		{email: "a@", valid: false},
		{email: "a@b", valid: false},
		{email: "a@b.c", valid: false},
		{email: "a@b.com", valid: true},
		{email: "jane@example.com", valid: true},
		{email: "jane.doe+tag@example.co.uk", valid: true},
		{email: "jane doe@example.com", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tc.email)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		password string
		valid    bool
	}{
		{password: "", valid: false},
		{password: "a", valid: false},
		{password: "abcdef", valid: false},
		{password: "password123", valid: false},
		{password: "PASSWORD123", valid: false},
		{password: "Password", valid: false},
		{password: "Passw0rd", valid: true},
		{password: "Pa5sw", valid: false},
		{password: "Abcdefghijklmnopqrs1x", valid: false},
		{password: "Abcdefghijklmnopqrs1", valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			if v.Valid() != tc.valid {
				t.Errorf("expected %v, got %v", tc.valid, v.Valid())
				for _, e := range v.Errors {
					t.Log(e)
				}
			}
		})
	}
}
