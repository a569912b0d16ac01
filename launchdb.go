// This package contains the types for the launch records table. No HTTP or GCP imports.
package launchdb

const(
	// The dropdown value (and label) that selects every launch site.
	AllSites = "All Sites"
)
