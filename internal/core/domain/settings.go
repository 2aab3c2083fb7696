package domain

// AppSettings holds the user's last-used conversion options.
// They seed the defaults for the next CLI or GUI invocation.
type AppSettings struct {
	// Locale is the BCP 47 tag for fixed UI strings.
	Locale string

	// TableFormat is the table rendering choice.
	TableFormat TableFormat

	// ChunkSize is the output part size limit in bytes, 0 for unlimited.
	ChunkSize int

	// OutputDir is the last-used output directory.
	OutputDir string
}

// DefaultAppSettings returns the settings used when no config file exists.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Locale:      "en-US",
		TableFormat: TableTSV,
		ChunkSize:   0,
		OutputDir:   "",
	}
}
