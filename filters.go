package main

import (
	"fmt"
	"regexp"
)

// FilterConfig represents the optional pluggable-database name filters
type FilterConfig struct {
	NamePattern        string `yaml:"name_pattern"`
	ExcludeNamePattern string `yaml:"exclude_name_pattern"`
}

// CompiledFilters holds the compiled regex patterns for efficient matching
type CompiledFilters struct {
	NameRegex        *regexp.Regexp
	ExcludeNameRegex *regexp.Regexp
}

// CompileFilters compiles the configured patterns. Empty patterns compile
// to nil, meaning "match everything" / "exclude nothing".
func CompileFilters(filter FilterConfig) (*CompiledFilters, error) {
	compiled := &CompiledFilters{}

	if filter.NamePattern != "" {
		re, err := regexp.Compile(filter.NamePattern)
		if err != nil {
			return nil, fmt.Errorf("invalid name_pattern '%s': %w", filter.NamePattern, err)
		}
		compiled.NameRegex = re
	}

	if filter.ExcludeNamePattern != "" {
		re, err := regexp.Compile(filter.ExcludeNamePattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude_name_pattern '%s': %w", filter.ExcludeNamePattern, err)
		}
		compiled.ExcludeNameRegex = re
	}

	return compiled, nil
}

// Empty reports whether no filter is configured.
func (f *CompiledFilters) Empty() bool {
	return f.NameRegex == nil && f.ExcludeNameRegex == nil
}

// matchName applies include then exclude pattern to a PDB name.
func (f *CompiledFilters) matchName(name string) bool {
	if f.NameRegex != nil && !f.NameRegex.MatchString(name) {
		return false
	}
	if f.ExcludeNameRegex != nil && f.ExcludeNameRegex.MatchString(name) {
		return false
	}
	return true
}

// ApplyPDBFilters returns the pluggable databases whose names pass the
// configured filters, preserving input order.
func ApplyPDBFilters(pdbs []PluggableDatabase, filters *CompiledFilters) []PluggableDatabase {
	if filters == nil || filters.Empty() {
		return pdbs
	}

	filtered := make([]PluggableDatabase, 0, len(pdbs))
	for _, pdb := range pdbs {
		if filters.matchName(pdb.PDBName) {
			filtered = append(filtered, pdb)
		}
	}

	if len(filtered) != len(pdbs) {
		logger.Verbose("Name filters excluded %d of %d pluggable databases", len(pdbs)-len(filtered), len(pdbs))
	}

	return filtered
}
