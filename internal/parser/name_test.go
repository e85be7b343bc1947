package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "first line",
			text: "JORDAN SMITH\njordan@acme.com",
			want: "JORDAN SMITH",
		},
		{
			name: "mixed case",
			text: "Jordan Smith\nSenior Analyst",
			want: "Jordan Smith",
		},
		{
			name: "skips document header",
			text: "Jordan Smith Resume\nContact Details",
			want: "Contact Details",
		},
		{
			name: "single word rejected",
			text: "Jordan\nhas experience",
			want: "",
		},
		{
			name: "lowercase rejected",
			text: "jordan smith\nno header here",
			want: "",
		},
		{
			name: "beyond third line ignored",
			text: "line one here\nline two here\nline three here\nJordan Smith",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.text))
		})
	}
}

func TestExtractNameFromEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "dotted local part",
			text: "m.riley@company.com | (555) 123-4567 | Boston, MA",
			want: "M. Riley",
		},
		{
			name: "single local part",
			text: "riley@company.com | (555) 123-4567",
			want: "Riley",
		},
		{
			name: "digits rejected",
			text: "m.riley2@company.com",
			want: "",
		},
		{
			name: "no email",
			text: "Jordan Smith | Boston, MA",
			want: "",
		},
		{
			name: "email not on first line",
			text: "header line\nm.riley@company.com",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractNameFromEmail(tt.text))
		})
	}
}
