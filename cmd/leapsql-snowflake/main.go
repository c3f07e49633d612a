// Package main provides the CLI for the LeapSQL Snowflake adapter.
package main

import "github.com/leapstack-labs/leapsql-snowflake/internal/cli"

func main() {
	cli.Execute()
}
