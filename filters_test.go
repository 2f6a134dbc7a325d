package main

import (
	"testing"
)

func TestCompileFilters(t *testing.T) {
	tests := []struct {
		name    string
		config  FilterConfig
		wantErr bool
	}{
		{"empty", FilterConfig{}, false},
		{"include only", FilterConfig{NamePattern: "^PROD"}, false},
		{"exclude only", FilterConfig{ExcludeNamePattern: "TEST$"}, false},
		{"both", FilterConfig{NamePattern: "^P", ExcludeNamePattern: "X$"}, false},
		{"bad include", FilterConfig{NamePattern: "["}, true},
		{"bad exclude", FilterConfig{ExcludeNamePattern: "("}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CompileFilters(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("CompileFilters() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyPDBFilters(t *testing.T) {
	logger = NewLogger(LogLevelSilent)

	pdbs := []PluggableDatabase{
		{PDBName: "PROD_SALES", ContainerDatabaseID: "cdb1"},
		{PDBName: "PROD_HR", ContainerDatabaseID: "cdb1"},
		{PDBName: "DEV_SALES", ContainerDatabaseID: "cdb2"},
		{PDBName: "PROD_TEST", ContainerDatabaseID: "cdb2"},
	}

	tests := []struct {
		name      string
		config    FilterConfig
		wantNames []string
	}{
		{
			name:      "no filters keep everything",
			config:    FilterConfig{},
			wantNames: []string{"PROD_SALES", "PROD_HR", "DEV_SALES", "PROD_TEST"},
		},
		{
			name:      "include pattern",
			config:    FilterConfig{NamePattern: "^PROD_"},
			wantNames: []string{"PROD_SALES", "PROD_HR", "PROD_TEST"},
		},
		{
			name:      "exclude pattern",
			config:    FilterConfig{ExcludeNamePattern: "TEST"},
			wantNames: []string{"PROD_SALES", "PROD_HR", "DEV_SALES"},
		},
		{
			name:      "include and exclude",
			config:    FilterConfig{NamePattern: "^PROD_", ExcludeNamePattern: "TEST"},
			wantNames: []string{"PROD_SALES", "PROD_HR"},
		},
		{
			name:      "include matches nothing",
			config:    FilterConfig{NamePattern: "^QA_"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := CompileFilters(tt.config)
			if err != nil {
				t.Fatalf("CompileFilters() error = %v", err)
			}

			got := ApplyPDBFilters(pdbs, filters)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("ApplyPDBFilters() returned %d PDBs, want %d", len(got), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if got[i].PDBName != name {
					t.Errorf("filtered[%d] = %q, want %q (order must be preserved)", i, got[i].PDBName, name)
				}
			}
		})
	}
}

func TestApplyPDBFilters_NilFilters(t *testing.T) {
	pdbs := []PluggableDatabase{{PDBName: "P1"}}
	if got := ApplyPDBFilters(pdbs, nil); len(got) != 1 {
		t.Errorf("ApplyPDBFilters(nil filters) returned %d PDBs, want 1", len(got))
	}
}
