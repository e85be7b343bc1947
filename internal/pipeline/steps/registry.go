// Package steps defines the ordered step registry for the resume
// profiling pipeline.
package steps

import (
	"fmt"

	dbpkg "github.com/jonathan/resume-profiler/internal/db"
)

// Step names, in execution order.
const (
	ReadDocument    = "read_document"
	ParseProfile    = "parse_profile"
	ValidateProfile = "validate_profile"
	GenerateScript  = "generate_script"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// Registry holds all step definitions
var Registry = map[string]StepDefinition{
	ReadDocument: {
		Name:         ReadDocument,
		Category:     dbpkg.CategoryIngestion,
		Dependencies: []string{},
	},
	ParseProfile: {
		Name:         ParseProfile,
		Category:     dbpkg.CategoryParsing,
		Dependencies: []string{ReadDocument},
	},
	ValidateProfile: {
		Name:         ValidateProfile,
		Category:     dbpkg.CategoryParsing,
		Dependencies: []string{ParseProfile},
	},
	GenerateScript: {
		Name:         GenerateScript,
		Category:     dbpkg.CategoryGeneration,
		Dependencies: []string{ValidateProfile},
	},
}

// Order returns the step names in execution order.
func Order() []string {
	return []string{ReadDocument, ParseProfile, ValidateProfile, GenerateScript}
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("missing dependencies: %v", e.MissingDependencies)
}

// ValidateDependencies checks that every dependency of stepName appears in
// completed. The pipeline records steps as they finish and consults this
// before running a step out of band (e.g. regenerating a script for a
// stored profile).
func ValidateDependencies(stepName string, completed []string) error {
	def, ok := Registry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	done := make(map[string]bool, len(completed))
	for _, name := range completed {
		done[name] = true
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !done[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}

	return nil
}
