package pagination

import (
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	tests := []struct {
		name string
		page int
		size int
		want []int
	}{
		{
			name: "first page",
			page: 1,
			size: 5,
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "middle page",
			page: 2,
			size: 5,
			want: []int{6, 7, 8, 9, 10},
		},
		{
			name: "partial last page",
			page: 3,
			size: 5,
			want: []int{11, 12},
		},
		{
			name: "page past the end is empty",
			page: 4,
			size: 5,
			want: []int{},
		},
		{
			name: "far past the end is empty",
			page: 100,
			size: 10,
			want: []int{},
		},
		{
			name: "page below one is treated as one",
			page: 0,
			size: 3,
			want: []int{1, 2, 3},
		},
		{
			name: "size covering everything",
			page: 1,
			size: 50,
			want: items,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Page(items, tt.page, tt.size)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Page(%d, %d) = %v, want %v", tt.page, tt.size, got, tt.want)
			}
			if len(got) > tt.size && tt.size >= 1 {
				t.Errorf("Page(%d, %d) returned %d elements, more than the page size", tt.page, tt.size, len(got))
			}
		})
	}
}

func TestPageEmptyInput(t *testing.T) {
	got := Page([]string{}, 1, 10)
	if len(got) != 0 {
		t.Errorf("Page on empty input = %v, want empty", got)
	}
}

func TestPageFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "missing defaults to 1", query: "", want: 1},
		{name: "explicit page", query: "page=3", want: 3},
		{name: "non-numeric defaults to 1", query: "page=abc", want: 1},
		{name: "zero defaults to 1", query: "page=0", want: 1},
		{name: "negative defaults to 1", query: "page=-2", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/api/questions?"+tt.query, nil)
			if got := PageFromQuery(c); got != tt.want {
				t.Errorf("PageFromQuery(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}
