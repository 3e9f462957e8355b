package version

const APP = "showlink"

var (
	VERSION = "dev"
	COMMIT  = "unknown"
)
