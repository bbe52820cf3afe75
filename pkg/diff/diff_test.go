package diff

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []Segment
	}{
		{
			name: "prefix and suffix changes",
			a:    "old_file.txt",
			b:    "newer_file.md",
			want: []Segment{
				{Removed, "old"},
				{New, "newer"},
				{Unchanged, "_file."},
				{Removed, "txt"},
				{New, "md"},
			},
		},
		{
			name: "single character swap",
			a:    "a.txt",
			b:    "b.txt",
			want: []Segment{{Removed, "a"}, {New, "b"}, {Unchanged, ".txt"}},
		},
		{
			name: "pure insertion",
			a:    "photo.jpg",
			b:    "photo-1.jpg",
			want: []Segment{{Unchanged, "photo"}, {New, "-1"}, {Unchanged, ".jpg"}},
		},
		{
			name: "pure deletion",
			a:    "dir/sub/file",
			b:    "dir/file",
			want: []Segment{{Unchanged, "dir/"}, {Removed, "sub/"}, {Unchanged, "file"}},
		},
		{
			name: "identical",
			a:    "same.txt",
			b:    "same.txt",
			want: []Segment{{Unchanged, "same.txt"}},
		},
		{
			name: "from empty",
			a:    "",
			b:    "abc",
			want: []Segment{{New, "abc"}},
		},
		{
			name: "to empty",
			a:    "abc",
			b:    "",
			want: []Segment{{Removed, "abc"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.a, tt.b))
		})
	}
}

func TestCompute_BothEmpty(t *testing.T) {
	assert.Empty(t, Compute("", ""))
}

func TestCompute_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("ab._/-xé")

	randomString := func() string {
		n := rng.Intn(12)
		r := make([]rune, n)
		for i := range r {
			r[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(r)
	}

	for i := 0; i < 500; i++ {
		a, b := randomString(), randomString()
		segments := Compute(a, b)

		require.Equal(t, a, Source(segments), "source of %q -> %q", a, b)
		require.Equal(t, b, Target(segments), "target of %q -> %q", a, b)

		for j := 1; j < len(segments); j++ {
			prev, cur := segments[j-1], segments[j]
			require.NotEqual(t, prev.Kind, cur.Kind, "adjacent runs must differ in kind: %q -> %q", a, b)
			require.False(t, prev.Kind == New && cur.Kind == Removed, "removed must precede new: %q -> %q", a, b)
		}
		for _, s := range segments {
			require.NotEmpty(t, s.Text)
		}
	}
}

func TestCompute_Restartable(t *testing.T) {
	first := Compute("report_v1.pdf", "report_final.pdf")
	second := Compute("report_v1.pdf", "report_final.pdf")
	assert.Equal(t, first, second)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Removed", Removed.String())
	assert.Equal(t, "Unchanged", Unchanged.String())
	assert.Equal(t, "New", New.String())
	assert.Equal(t, "Unknown", Kind(9).String())
}
