package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-profiler/internal/profile"
)

func TestArtifactStepConstants(t *testing.T) {
	// Verify step constants are defined
	steps := []string{
		StepSourceText,
		StepProfile,
		StepScript,
	}

	for _, step := range steps {
		assert.NotEmpty(t, step, "step constant should not be empty")
	}
}

func TestRunType(t *testing.T) {
	// Verify Run struct can be instantiated
	run := Run{
		SourceFile: "resume.docx",
		Variant:    "general",
		Status:     StatusRunning,
	}

	assert.Equal(t, "resume.docx", run.SourceFile)
	assert.Equal(t, "general", run.Variant)
	assert.Equal(t, "running", run.Status)
	assert.Nil(t, run.CompletedAt)
}

func TestProfileArtifactRoundTrip(t *testing.T) {
	// This is a unit test that verifies the artifact marshaling shape
	// Integration tests verify database operations
	p := &profile.ResumeProfile{
		Name:        "Jordan Smith",
		CurrentRole: "Operations Manager",
		Skills:      []string{"Scheduling", "Budgeting"},
	}

	jsonBytes, err := json.Marshal(p)
	require.NoError(t, err)

	var result profile.ResumeProfile
	require.NoError(t, json.Unmarshal(jsonBytes, &result))

	assert.Equal(t, "Jordan Smith", result.Name)
	assert.Equal(t, "Operations Manager", result.CurrentRole)
	assert.Len(t, result.Skills, 2)
}
