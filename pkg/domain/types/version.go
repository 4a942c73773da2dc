package types

// Version is the build version of xray-sync, overridden with -ldflags at release time
var Version = "dev"
