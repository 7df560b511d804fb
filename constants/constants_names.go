package constants

const (
	EXT         = ".btr"
	C_EXT       = ".c"
	CONFIG_FILE = "butter.toml"

	DEFAULT_CC     = "cc"
	BUTTER_VERSION = "0.1.0"
)
