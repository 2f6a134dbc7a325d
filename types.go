package main

// Placeholder values substituted when a join key or attribute is missing.
// The report never drops a row for lack of a match; it degrades to these.
const (
	unknownPDB         = "Unknown PDB"
	unknownCDB         = "Unknown CDB"
	unknownOracleHome  = "Unknown Oracle Home"
	unknownCompartment = "Unknown Compartment"
)

// PluggableDatabase is one element of `oci db pluggable-database list`.
// Only the fields the report consumes are decoded.
type PluggableDatabase struct {
	PDBName             string `json:"pdb-name"`
	ContainerDatabaseID string `json:"container-database-id"`
}

// ContainerDatabase is one element of `oci db database list`.
type ContainerDatabase struct {
	ID       string `json:"id"`
	DBName   string `json:"db-name"`
	DBHomeID string `json:"db-home-id"`
}

// DBHome is one element of `oci db db-home list`.
type DBHome struct {
	ID          string `json:"id"`
	DisplayName string `json:"display-name"`
}

// Compartment is the payload of `oci iam compartment get`.
type Compartment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CDBInfo is the value side of the CDB lookup mapping.
type CDBInfo struct {
	Name     string
	DBHomeID string
}

// CDBMapping maps a container database OCID to its name and DB home OCID.
type CDBMapping map[string]CDBInfo

// DBHomeMapping maps a DB home OCID to its display name.
type DBHomeMapping map[string]string

// MappingRow is one denormalized line of the report: a pluggable database
// joined to its container database, DB home, and owning compartment.
type MappingRow struct {
	PDBName         string `json:"pdb_name"`
	CDBName         string `json:"cdb_name"`
	OracleHome      string `json:"oracle_home"`
	CompartmentName string `json:"compartment_name"`
	CDBID           string `json:"cdb_id"`
	CompartmentID   string `json:"compartment_id"`
}

// mappingHeader is the fixed column order of the report.
var mappingHeader = []string{
	"PDB_Name",
	"CDB_Name",
	"Oracle_Home",
	"Compartment_Name",
	"CDB_ID",
	"Compartment_ID",
}

// fields returns the row in report column order.
func (r MappingRow) fields() []string {
	return []string{
		r.PDBName,
		r.CDBName,
		r.OracleHome,
		r.CompartmentName,
		r.CDBID,
		r.CompartmentID,
	}
}
