package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"123", true},
		{"3.14", true},
		{"0042", true},
		{".5", true},
		{"7.", true},
		{"3.14.15", false},
		{"-2", false},
		{"+7", false},
		{"1e5", false},
		{"12 3", false},
		{"", false},
		{".", false},
		{"abc", false},
		{"12a", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LooksNumeric(tt.in), "LooksNumeric(%q)", tt.in)
	}
}

func TestDetectHeader(t *testing.T) {
	t.Parallel()

	d := Dialect{Delimiter: ',', Quote: '"'}

	tests := []struct {
		name   string
		sample string
		want   bool
	}{
		{
			name:   "text labels over numeric columns",
			sample: "id,count\n1,2\n3,4\n",
			want:   true,
		},
		{
			name:   "numeric first row is data",
			sample: "1,2\n3,4\n5,6\n",
			want:   false,
		},
		{
			name:   "labels over length-consistent strings",
			sample: "name,city\nalice,tokyo\nbobby,osaka\n",
			want:   true,
		},
		{
			name:   "matching lengths look like data",
			sample: "abcde,fghij\nklmno,pqrst\n",
			want:   false,
		},
		{
			name:   "mixed signals still favor the header",
			sample: "id,name\n1,alice\n2,bobby\n",
			want:   true,
		},
		{
			name:   "single row cannot vote",
			sample: "a,b\n",
			want:   false,
		},
		{
			name:   "empty sample",
			sample: "",
			want:   false,
		},
		{
			name:   "empty body cells are skipped",
			sample: "id,score\n1,\n2,\n",
			want:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DetectHeader([]byte(tt.sample), d))
		})
	}
}
