package main

// Get returns the CDB info for an OCID and whether it was present. The
// zero value carries the placeholder name so callers can use it directly.
func (m CDBMapping) Get(id string) (CDBInfo, bool) {
	if info, ok := m[id]; ok {
		return info, true
	}
	return CDBInfo{Name: unknownCDB}, false
}

// GetName returns the display name for a DB home OCID, or the Oracle Home
// placeholder when the id is empty or unmapped.
func (m DBHomeMapping) GetName(id string) string {
	if name, ok := m[id]; ok {
		return name
	}
	return unknownOracleHome
}

// BuildMappingRows joins each pluggable database to its container database,
// DB home, and compartment. Lookups are total: a missing key resolves to a
// placeholder, never to a dropped row, so the output always has one row per
// input PDB, in input order.
func BuildMappingRows(pdbs []PluggableDatabase, cdbs CDBMapping, homes DBHomeMapping, compartment Compartment) []MappingRow {
	rows := make([]MappingRow, 0, len(pdbs))

	for _, pdb := range pdbs {
		cdb, _ := cdbs.Get(pdb.ContainerDatabaseID)

		oracleHome := unknownOracleHome
		if cdb.DBHomeID != "" {
			oracleHome = homes.GetName(cdb.DBHomeID)
		}

		rows = append(rows, MappingRow{
			PDBName:         stringOr(pdb.PDBName, unknownPDB),
			CDBName:         cdb.Name,
			OracleHome:      oracleHome,
			CompartmentName: compartment.Name,
			CDBID:           stringOr(pdb.ContainerDatabaseID, unknownCDB),
			CompartmentID:   compartment.ID,
		})
	}

	return rows
}
