// Package report formats the outcome of a patrol run.
//
// The distinct-visit count is written as-is; Text prints only that number,
// JSON and YAML print the whole Result.
package report
