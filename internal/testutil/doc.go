// Package testutil provides shared test utilities for prepflow.
//
// This package consolidates the fixtures used across the codebase so that
// tests exercise the same small omics tables rather than each inventing
// their own.
//
// # Fixtures
//
//   - SampleExpressionTable() - a tiny transcriptomics master table
//   - SampleCopyNumberTable() - a tiny copy-number master table
//   - SampleDatasets() - a ready-to-merge mapping of named datasets
//   - SampleConfigYAML - a complete prepflow.yaml document
//   - WriteExpressionCSV() - writes an expression CSV into a test directory
package testutil
