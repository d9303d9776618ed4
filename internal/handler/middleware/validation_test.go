//go:build unit

package middleware_test

import (
	"testing"

	"room-reservation/internal/handler/middleware"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notBlankProbe struct {
	Name     string  `json:"name" binding:"notblank"`
	Nickname *string `json:"nickname" binding:"omitempty,notblank"`
}

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, middleware.RegisterValidators())

	blank := "  "
	ok := "Rahma"

	cases := []struct {
		name  string
		probe notBlankProbe
		valid bool
	}{
		{name: "文字あり", probe: notBlankProbe{Name: "Siti"}, valid: true},
		{name: "空白のみNG", probe: notBlankProbe{Name: " \t "}, valid: false},
		{name: "ポインタ未指定OK", probe: notBlankProbe{Name: "Siti", Nickname: nil}, valid: true},
		{name: "ポインタ空白NG", probe: notBlankProbe{Name: "Siti", Nickname: &blank}, valid: false},
		{name: "ポインタ文字ありOK", probe: notBlankProbe{Name: "Siti", Nickname: &ok}, valid: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tc.probe)
			assert.Equal(t, tc.valid, err == nil, "err: %v", err)
		})
	}
}
