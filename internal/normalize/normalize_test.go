package normalize

import "testing"

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "space separated line passes through",
			in:   "2016-01-01 12:00 carol hello there",
			want: "2016-01-01 12:00 carol hello there",
		},
		{
			name: "carriage return removed",
			in:   "2016-01-01 12:00 carol hello\r",
			want: "2016-01-01 12:00 carol hello",
		},
		{
			name: "tab separated fields rejoined",
			in:   "2016-01-01 12:00:00\tcarol\thello there",
			want: "2016-01-01 12:00:00 carol hello there",
		},
		{
			name: "message spacing preserved",
			in:   "2016-01-01 12:00:00\tcarol\thello  there",
			want: "2016-01-01 12:00:00 carol hello  there",
		},
		{
			name: "padded action prefix field",
			in:   "2016-01-01 12:00:00\t *\tcarol waves",
			want: "2016-01-01 12:00:00 * carol waves",
		},
		{
			name: "sigil prefix field",
			in:   "2016-01-01 12:00:00\t@carol\thi",
			want: "2016-01-01 12:00:00 @carol hi",
		},
		{
			name: "empty message field",
			in:   "2016-01-01 12:00:00\tcarol\t",
			want: "2016-01-01 12:00:00 carol",
		},
		{
			name: "bold code stripped",
			in:   "2016-01-01 12:00\tcarol\t\x02loud\x02 text",
			want: "2016-01-01 12:00 carol loud text",
		},
		{
			name: "color code stripped",
			in:   "2016-01-01 12:00\tcarol\t\x0304red text",
			want: "2016-01-01 12:00 carol red text",
		},
		{
			name: "stray control character dropped",
			in:   "2016-01-01 12:00 carol he\x01llo",
			want: "2016-01-01 12:00 carol hello",
		},
		{
			name: "trailing whitespace removed",
			in:   "2016-01-01 12:00 carol hi   ",
			want: "2016-01-01 12:00 carol hi",
		},
		{
			name: "empty line",
			in:   "",
			want: "",
		},
		{
			name: "whitespace only line",
			in:   "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Line(tt.in)
			if got != tt.want {
				t.Errorf("Line(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
