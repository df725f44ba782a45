package paging_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/coursehub/internal/app/system/paging"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantLimit  int64
		wantOffset int64
	}{
		{"defaults", "/courses", 100, 0},
		{"explicit", "/courses?limit=25&offset=50", 25, 50},
		{"clamped to ceiling", "/courses?limit=5000", 100, 0},
		{"zero limit falls back", "/courses?limit=0", 100, 0},
		{"negative limit falls back", "/courses?limit=-1", 100, 0},
		{"negative offset falls back", "/courses?offset=-10", 100, 0},
		{"garbage falls back", "/courses?limit=abc&offset=xyz", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			w := paging.Parse(r)
			if w.Limit != tt.wantLimit {
				t.Errorf("limit: got %d, want %d", w.Limit, tt.wantLimit)
			}
			if w.Offset != tt.wantOffset {
				t.Errorf("offset: got %d, want %d", w.Offset, tt.wantOffset)
			}
		})
	}
}
