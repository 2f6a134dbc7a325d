package main

import (
	"github.com/oracle/oci-go-sdk/v65/common"
)

// verifyProfile resolves the named profile from the standard OCI config
// file (~/.oci/config unless overridden by the SDK's own environment
// handling) and logs what it found. Authentication itself is delegated to
// the external CLI, so an unresolvable profile is only a warning: session
// or instance-principal setups can be invisible to the config file while
// still working for the CLI.
func verifyProfile(profile string) {
	provider := common.CustomProfileConfigProvider("", profile)

	tenancy, err := provider.TenancyOCID()
	if err != nil {
		logger.Verbose("Profile %q not resolvable from OCI config file: %v (the external client may still authenticate)", profile, err)
		return
	}

	region, err := provider.Region()
	if err != nil {
		logger.Verbose("Profile %q has no region in OCI config file: %v", profile, err)
		logger.Info("Using profile %q (tenancy %s)", profile, formatShortOCID(tenancy))
		return
	}

	logger.Info("Using profile %q (tenancy %s, region %s)", profile, formatShortOCID(tenancy), region)
}
