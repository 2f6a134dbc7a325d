package main

import (
	"context"
	"fmt"
	"strings"
)

// fetchCompartment retrieves the compartment for the run. Failures degrade
// to a placeholder name so the report still carries every row; the id is
// echoed from the argument regardless.
func fetchCompartment(ctx context.Context, client ControlPlaneClient, compartmentID string) Compartment {
	logger.Info("Fetching compartment name...")

	compartment := Compartment{ID: compartmentID, Name: unknownCompartment}

	data, err := client.GetResource(ctx, "iam", "compartment", compartmentID)
	if err != nil {
		logger.Error("Failed to get compartment %s: %v", formatShortOCID(compartmentID), err)
		return compartment
	}

	var fetched Compartment
	if err := decodeData(data, &fetched); err != nil {
		logger.Error("Failed to decode compartment %s: %v", formatShortOCID(compartmentID), err)
		return compartment
	}

	if fetched.Name != "" {
		compartment.Name = fetched.Name
	}

	logger.Verbose("Compartment %s resolved to %q", formatShortOCID(compartmentID), compartment.Name)
	return compartment
}

// isValidCompartmentOCID performs a light format check on a compartment
// OCID. It is not a full syntax validation, just enough to catch swapped
// arguments before any process is spawned.
func isValidCompartmentOCID(ocid string) bool {
	if !strings.HasPrefix(ocid, "ocid1.") {
		return false
	}
	parts := strings.Split(ocid, ".")
	if len(parts) < 5 {
		return false
	}
	return parts[1] == "compartment" || parts[1] == "tenancy"
}

// formatShortOCID creates a short, readable version of an OCID for log lines.
func formatShortOCID(ocid string) string {
	if len(ocid) <= 8 {
		return ocid
	}
	return fmt.Sprintf("ocid-...%s", ocid[len(ocid)-8:])
}
