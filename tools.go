//go:build tools

// Package tools pins the versions of the command-line tools used to lint,
// migrate, and document the battle service:
//
//	go run github.com/pressly/goose/v3/cmd/goose -dir migrations postgres "$DSN" status
//	go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go
//	go run github.com/vektra/mockery/v2
//	go run golang.org/x/perf/cmd/benchstat old.txt new.txt
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
