package pcf

// Version and BuildDate are overridden at link time with -ldflags -X.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)
