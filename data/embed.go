package data

import (
	_ "embed"
)

//go:embed seed/reference.sql
var SeedReferenceSQL string

//go:embed schemas/save_state.schema.json
var SchemaSaveState string

//go:embed schemas/update_step.schema.json
var SchemaUpdateStep string

//go:embed schemas/submit.schema.json
var SchemaSubmit string

//go:embed schemas/role_search.schema.json
var SchemaRoleSearch string
