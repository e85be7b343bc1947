package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "pipes become at",
			in:   "Manager | Acme Corp",
			want: "Manager at Acme Corp",
		},
		{
			name: "dash range becomes to then strips",
			in:   "2019 – 2021 grew the region",
			want: "grew the region",
		},
		{
			name: "month year stripped",
			in:   "Joined January 2020 and led the rollout",
			want: "Joined and led the rollout",
		},
		{
			name: "plain prose untouched",
			in:   "Led a team of fifty employees",
			want: "Led a team of fifty employees",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanSentence(tt.in))
		})
	}
}
