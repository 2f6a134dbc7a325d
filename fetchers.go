package main

import (
	"context"
	"encoding/json"
)

// The fetchers wrap the control-plane client with the degrade-to-empty
// policy: any failure is logged and downgraded to an empty result so the
// join resolves to placeholders instead of aborting the run.

// fetchPluggableDatabases retrieves the pluggable databases in the
// compartment.
func fetchPluggableDatabases(ctx context.Context, client ControlPlaneClient, compartmentID string, limit int) []PluggableDatabase {
	logger.Info("Fetching pluggable databases...")

	data, err := client.ListResources(ctx, "db", "pluggable-database", limit, compartmentID)
	if err != nil {
		logger.Error("Failed to list pluggable databases: %v", err)
		return nil
	}

	var pdbs []PluggableDatabase
	if err := decodeData(data, &pdbs); err != nil {
		logger.Error("Failed to decode pluggable database list: %v", err)
		return nil
	}

	logger.Verbose("Found %d pluggable databases in compartment %s", len(pdbs), formatShortOCID(compartmentID))
	return pdbs
}

// fetchCDBMapping retrieves the container databases in the compartment and
// returns them keyed by OCID.
func fetchCDBMapping(ctx context.Context, client ControlPlaneClient, compartmentID string, limit int) CDBMapping {
	logger.Info("Fetching container databases...")

	data, err := client.ListResources(ctx, "db", "database", limit, compartmentID)
	if err != nil {
		logger.Error("Failed to list container databases: %v", err)
		return CDBMapping{}
	}

	var cdbs []ContainerDatabase
	if err := decodeData(data, &cdbs); err != nil {
		logger.Error("Failed to decode container database list: %v", err)
		return CDBMapping{}
	}

	mapping := make(CDBMapping, len(cdbs))
	for _, cdb := range cdbs {
		if cdb.ID == "" {
			logger.Debug("Skipping container database without id (db-name %q)", cdb.DBName)
			continue
		}
		mapping[cdb.ID] = CDBInfo{
			Name:     stringOr(cdb.DBName, unknownCDB),
			DBHomeID: cdb.DBHomeID,
		}
	}

	logger.Verbose("Mapped %d container databases", len(mapping))
	return mapping
}

// fetchDBHomeMapping retrieves the DB homes in the compartment and returns
// display names keyed by OCID.
func fetchDBHomeMapping(ctx context.Context, client ControlPlaneClient, compartmentID string, limit int) DBHomeMapping {
	logger.Info("Fetching DB homes...")

	data, err := client.ListResources(ctx, "db", "db-home", limit, compartmentID)
	if err != nil {
		logger.Error("Failed to list DB homes: %v", err)
		return DBHomeMapping{}
	}

	var homes []DBHome
	if err := decodeData(data, &homes); err != nil {
		logger.Error("Failed to decode DB home list: %v", err)
		return DBHomeMapping{}
	}

	mapping := make(DBHomeMapping, len(homes))
	for _, home := range homes {
		if home.ID == "" {
			logger.Debug("Skipping DB home without id (display-name %q)", home.DisplayName)
			continue
		}
		mapping[home.ID] = stringOr(home.DisplayName, unknownOracleHome)
	}

	logger.Verbose("Mapped %d DB homes", len(mapping))
	return mapping
}

// decodeData unmarshals a data payload into dst. A nil or absent payload is
// treated as empty, matching the control plane's `{"data": ...}` contract.
func decodeData(data json.RawMessage, dst interface{}) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, dst)
}

// stringOr returns s, or fallback when s is empty.
func stringOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
