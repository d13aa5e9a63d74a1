package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenInstructions(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold markup stripped",
			in:   "Turn <b>left</b> onto <b>Gateway Dr</b>",
			want: "Turn left onto Gateway Dr",
		},
		{
			name: "toll road div becomes its own line",
			in:   `Merge onto <b>I-635 TEXpress</b><div style="font-size:0.9em">Toll road</div>`,
			want: "Merge onto I-635 TEXpress\nToll road",
		},
		{
			name: "entities unescaped",
			in:   "Take the ramp to <b>Dallas&nbsp;North&nbsp;Tollway</b> &amp; merge",
			want: "Take the ramp to Dallas North Tollway & merge",
		},
		{
			name: "plain text untouched",
			in:   "Continue straight",
			want: "Continue straight",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flattenInstructions(tt.in))
		})
	}
}
