package model

// DownloadResult represents the outcome of a scenario export download
type DownloadResult struct {
	Tag         string
	ArchivePath string   // Absolute path of the transient archive, already removed
	Files       []string // Entries extracted into the feature directory
	Size        int64    // Total uncompressed size in bytes
}
