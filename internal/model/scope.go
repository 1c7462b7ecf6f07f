package model

// Environment names used for server mode switches.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated caller identity through use cases.
// Authentication itself lives outside this service; the middleware only
// translates whatever the edge resolved into a Scope.
type Scope struct {
	UserID         string
	AccountPurpose AccountPurpose
}
