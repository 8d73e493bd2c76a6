//go:build tools

package tools

// Tool dependencies pinned in go.mod. internal/api is regenerated from
// api/openapi.yaml with `go generate ./internal/api`; the goose CLI applies
// internal/adapters/postgres/migrations by hand, e.g.
//
//	go run github.com/pressly/goose/v3/cmd/goose -dir internal/adapters/postgres/migrations postgres "$DATABASE_URL" status
import (
	_ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
	_ "github.com/pressly/goose/v3/cmd/goose"
)
