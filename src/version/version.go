package version

var (
	// Release is the current release of the application
	Release = "5.3.2"
	// Version is the current version of the application
	Version string
	// GitHash is the git hash of the commit that was used to build the application
	GitHash string
)
