package config

import "time"

// UI constants
const (
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	EmbedDefaultColor = 0x2B2D31

	// Dex pagination
	SpeciesPerPage = 5
)

// Quality embed colors, keyed by stat-quality band.
var QualityColors = map[string]int{
	"perfect":  0xFFD700,
	"great":    0x800080,
	"good":     0x0000FF,
	"decent":   0x00FF00,
	"bad":      0x808080,
	"terrible": 0x4F4F4F,
}

// Database and performance constants
const (
	DefaultQueryTimeout     = 30 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	NetworkDialTimeout      = 5 * time.Second
	NetworkKeepAlive        = 30 * time.Second

	SpeciesCacheSize = 256
)
