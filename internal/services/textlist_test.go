package services

import "testing"

func TestExtractNumberedEntries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "markup blocks",
			in:   "<div>Oil leak</div><br><div>Brake wear</div>",
			want: []string{"Oil leak", "Brake wear"},
		},
		{
			name: "plain newlines",
			in:   "Oil leak\nBrake wear\nWorn bushes",
			want: []string{"Oil leak", "Brake wear", "Worn bushes"},
		},
		{
			name: "windows line endings",
			in:   "First\r\nSecond",
			want: []string{"First", "Second"},
		},
		{
			name: "blank lines and whitespace dropped",
			in:   "  First  \n\n   \nSecond",
			want: []string{"First", "Second"},
		},
		{
			name: "duplicates kept in order",
			in:   "Check\nCheck",
			want: []string{"Check", "Check"},
		},
		{
			name: "unclosed tag left in place",
			in:   "Left <unclosed",
			want: []string{"Left <unclosed"},
		},
		{
			name: "empty",
			in:   "",
			want: []string{},
		},
		{
			name: "markup only",
			in:   "<div><br></div>",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNumberedEntries(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %v", len(got), len(tt.want), got)
			}
			for i, entry := range got {
				if entry.No != i+1 {
					t.Errorf("entry %d numbered %d", i, entry.No)
				}
				if entry.Text != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, entry.Text, tt.want[i])
				}
			}
		})
	}
}
