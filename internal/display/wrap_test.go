package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestWrap(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		exp   string
	}{
		"fits": {
			text:  "Teleported to spawn.",
			width: 40,
			exp:   "Teleported to spawn.",
		},
		"breaks at width": {
			text:  "Warps (3): mine spawn tower",
			width: 15,
			exp:   "Warps (3): mine\nspawn tower",
		},
		"keeps newlines": {
			text:  "Warps (1):\n - spawn",
			width: 40,
			exp:   "Warps (1):\n - spawn",
		},
		"default width": {
			text:  strings.Repeat("a ", 50),
			width: 0,
			exp:   strings.TrimSpace(strings.Repeat("a ", 40)) + "\n" + strings.TrimSpace(strings.Repeat("a ", 10)),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "wrapped", Wrap(tt.text, tt.width), tt.exp)
		})
	}
}
