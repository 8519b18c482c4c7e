// Package internal implements the core holiday model: Holiday entries with
// locale-resolved names, the per-year Collection, and the Provider contract
// country rule-sets implement.
//
// The root holidays package re-exports these types; application code should
// import that instead.
package internal
