package util

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errRequired = errors.New("required")
	errTooLong  = errors.New("too long")
	errEmail    = errors.New("email")
	errPhone    = errors.New("phone")
)

func testTable() RuleTable {
	return RuleTable{
		"content": {
			Normalize: strings.TrimSpace,
			Rules: []Rule{
				{Tag: "required", Err: errRequired},
				{Tag: "max=5", Err: errTooLong},
			},
		},
		"email": {
			Rules: []Rule{{Tag: "contact_email", Err: errEmail}},
		},
		"phone": {
			Normalize: func(s string) string { return strings.Join(strings.Fields(s), "") },
			Rules:     []Rule{{Tag: "omitempty,phone", Err: errPhone}},
		},
	}
}

func TestRuleTable_Check(t *testing.T) {
	table := testTable()

	tests := []struct {
		name  string
		field string
		value string
		want  error
	}{
		{"blank content", "content", "   ", errRequired},
		{"content ok", "content", " abc ", nil},
		{"content counts runes", "content", "héllo", nil},
		{"content too long", "content", "abcdef", errTooLong},
		{"email ok", "email", "a@b.co", nil},
		{"email missing dot", "email", "a@b", errEmail},
		{"email empty", "email", "", errEmail},
		{"phone empty allowed", "phone", "", nil},
		{"phone with spaces", "phone", "+1 415 555 0100", nil},
		{"phone leading zero", "phone", "0123", errPhone},
		{"phone with dashes", "phone", "123-456-7890", errPhone},
		{"unknown field", "nickname", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Check(tt.field, tt.value))
		})
	}
}

func TestRuleTable_CheckAll(t *testing.T) {
	table := testTable()

	errs := table.CheckAll(map[string]string{
		"content": "ok",
		"phone":   "abc",
	})

	assert.Len(t, errs, 2)
	assert.Equal(t, errEmail, errs["email"])
	assert.Equal(t, errPhone, errs["phone"])
	assert.NotContains(t, errs, "content")
}
