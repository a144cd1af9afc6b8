package gapps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/gapps-query-service/internal/domain/gapps"
)

func TestParams_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  [][2]string
		del  []string
		want string
	}{
		{name: "empty", want: ""},
		{
			name: "insertion order",
			set:  [][2]string{{"b", "2"}, {"a", "1"}},
			want: "?b=2&a=1",
		},
		{
			name: "overwrite keeps position",
			set:  [][2]string{{"a", "1"}, {"b", "2"}, {"a", "3"}},
			want: "?a=3&b=2",
		},
		{
			name: "delete removes key",
			set:  [][2]string{{"a", "1"}, {"b", "2"}},
			del:  []string{"a", "missing"},
			want: "?b=2",
		},
		{
			name: "internal keys are skipped",
			set:  [][2]string{{"_hidden", "x"}, {"q", "v"}},
			want: "?q=v",
		},
		{
			name: "only internal keys",
			set:  [][2]string{{"_hidden", "x"}},
			want: "",
		},
		{
			name: "keys and values are form encoded",
			set:  [][2]string{{"a key", "x/y z"}},
			want: "?a+key=x%2Fy+z",
		},
		{
			name: "tilde is percent encoded",
			set:  [][2]string{{"start", "~ann.o-b_c@example.com"}},
			want: "?start=%7Eann.o-b_c%40example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p gapps.Params
			for _, kv := range tt.set {
				p.Set(kv[0], kv[1])
			}
			for _, k := range tt.del {
				p.Delete(k)
			}
			assert.Equal(t, tt.want, p.Encode())
		})
	}
}

func TestParams_GetAndKeys(t *testing.T) {
	t.Parallel()

	var p gapps.Params
	_, ok := p.Get("a")
	assert.False(t, ok)

	p.Set("a", "1")
	p.Set("b", "")
	v, ok := p.Get("b")
	assert.True(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, []string{"a", "b"}, p.Keys())
	assert.Equal(t, 2, p.Len())

	keys := p.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, p.Keys())
}
