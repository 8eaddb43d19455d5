package logger

import "github.com/dmitrymomot/customerdesk/pkg/environment"

// Mode selects how log output is rendered.
type Mode string

const (
	// ModeDevelopment writes human-readable output, one value per argument.
	ModeDevelopment Mode = "development"
	// ModeProduction writes one JSON object per log call.
	ModeProduction Mode = "production"
)

// ModeFor returns the Mode used for env. Only production renders JSON.
func ModeFor(env environment.Environment) Mode {
	if env.IsProduction() {
		return ModeProduction
	}
	return ModeDevelopment
}
