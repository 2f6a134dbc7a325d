package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testCompartmentID = "ocid1.compartment.oc1..aaaaaaaatest"

func testConfig(t *testing.T) *AppConfig {
	t.Helper()
	config := getDefaultConfig()
	config.General.Progress = false
	config.Output.File = filepath.Join(t.TempDir(), "pdb_cdb_mapping.csv")
	return config
}

func readReport(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open report %s: %v", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse report %s: %v", path, err)
	}
	return records
}

func TestExtract_FullSequence(t *testing.T) {
	logger = NewLogger(LogLevelSilent)

	client := &fakeControlPlane{
		lists: map[string]json.RawMessage{
			"db/pluggable-database": json.RawMessage(`[
				{"pdb-name": "P1", "container-database-id": "cdb1"},
				{"pdb-name": "P2", "container-database-id": "cdb-missing"}
			]`),
			"db/database": json.RawMessage(`[{"id": "cdb1", "db-name": "C1", "db-home-id": "h1"}]`),
			"db/db-home":  json.RawMessage(`[{"id": "h1", "display-name": "HOME1"}]`),
		},
		get: json.RawMessage(`{"id": "` + testCompartmentID + `", "name": "Prod"}`),
	}

	config := testConfig(t)
	if err := extract(context.Background(), client, nil, config, testCompartmentID); err != nil {
		t.Fatalf("extract() error = %v, want nil", err)
	}

	records := readReport(t, config.Output.File)
	if len(records) != 3 {
		t.Fatalf("report has %d records, want header + 2 rows", len(records))
	}

	wantRows := [][]string{
		{"P1", "C1", "HOME1", "Prod", "cdb1", testCompartmentID},
		{"P2", unknownCDB, unknownOracleHome, "Prod", "cdb-missing", testCompartmentID},
	}
	for i, want := range wantRows {
		for j := range want {
			if records[i+1][j] != want[j] {
				t.Errorf("records[%d][%d] = %q, want %q", i+1, j, records[i+1][j], want[j])
			}
		}
	}
}

func TestExtract_EmptyPDBSetWritesNothing(t *testing.T) {
	logger = NewLogger(LogLevelSilent)

	client := &fakeControlPlane{
		lists: map[string]json.RawMessage{
			"db/pluggable-database": json.RawMessage(`[]`),
		},
	}

	config := testConfig(t)
	if err := extract(context.Background(), client, nil, config, testCompartmentID); err != nil {
		t.Fatalf("extract() error = %v, want nil (empty compartment is not a failure)", err)
	}

	if _, err := os.Stat(config.Output.File); !os.IsNotExist(err) {
		t.Errorf("report file exists after empty PDB fetch (stat err = %v)", err)
	}
}

func TestExtract_FailedCDBFetchDegradesToPlaceholders(t *testing.T) {
	logger = NewLogger(LogLevelSilent)

	client := &fakeControlPlane{
		lists: map[string]json.RawMessage{
			"db/pluggable-database": json.RawMessage(`[{"pdb-name": "P1", "container-database-id": "cdb1"}]`),
			"db/db-home":            json.RawMessage(`[{"id": "h1", "display-name": "HOME1"}]`),
		},
		listErrs: map[string]error{
			"db/database": errors.New("ServiceError 500"),
		},
		getErr: errors.New("ServiceError 500"),
	}

	config := testConfig(t)
	if err := extract(context.Background(), client, nil, config, testCompartmentID); err != nil {
		t.Fatalf("extract() error = %v, want nil (run must complete on fetch failures)", err)
	}

	records := readReport(t, config.Output.File)
	if len(records) != 2 {
		t.Fatalf("report has %d records, want header + 1 row", len(records))
	}

	want := []string{"P1", unknownCDB, unknownOracleHome, unknownCompartment, "cdb1", testCompartmentID}
	for j := range want {
		if records[1][j] != want[j] {
			t.Errorf("records[1][%d] = %q, want %q", j, records[1][j], want[j])
		}
	}
}

func TestExtract_FilteredToEmptyWritesNothing(t *testing.T) {
	logger = NewLogger(LogLevelSilent)

	client := &fakeControlPlane{
		lists: map[string]json.RawMessage{
			"db/pluggable-database": json.RawMessage(`[{"pdb-name": "DEV_ONLY", "container-database-id": "cdb1"}]`),
		},
	}

	filters, err := CompileFilters(FilterConfig{NamePattern: "^PROD_"})
	if err != nil {
		t.Fatalf("CompileFilters() error = %v", err)
	}

	config := testConfig(t)
	if err := extract(context.Background(), client, filters, config, testCompartmentID); err != nil {
		t.Fatalf("extract() error = %v, want nil", err)
	}

	if _, err := os.Stat(config.Output.File); !os.IsNotExist(err) {
		t.Errorf("report file exists after filters removed every PDB (stat err = %v)", err)
	}
}

func TestExtract_WriteFailureReturnsError(t *testing.T) {
	logger = NewLogger(LogLevelSilent)

	client := &fakeControlPlane{
		lists: map[string]json.RawMessage{
			"db/pluggable-database": json.RawMessage(`[{"pdb-name": "P1", "container-database-id": "cdb1"}]`),
		},
	}

	config := testConfig(t)
	config.Output.File = filepath.Join(t.TempDir(), "no-such-dir", "report.csv")

	if err := extract(context.Background(), client, nil, config, testCompartmentID); err == nil {
		t.Error("extract() error = nil, want write failure surfaced")
	}
}
