// Package config loads skillery configuration via Viper.
//
// Configuration is searched in the current directory and the XDG config
// home, and every key can be overridden through SKILLERY_* environment
// variables. The curated category set and the ordered data-level
// vocabulary are part of the configuration so the ingestion and query
// layers can be exercised with synthetic vocabularies in tests.
package config
