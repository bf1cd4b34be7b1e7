package version

const (
	AppName    = "VRT Cogs"
	AppVersion = "0.3.0"
	RepoURL    = "https://github.com/LeDeathAmongst/vrt-cogs"
)
