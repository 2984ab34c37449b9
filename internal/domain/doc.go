// Package domain contains the core domain model for Bowgen.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// the gprMax text dialect, or the filesystem. Infra/adapters map into/from these types.
package domain
