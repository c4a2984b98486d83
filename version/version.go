package version

const (
	// SemVer is used as the fallback version of biguint when not using
	// git describe. It uses semantic versioning format.
	SemVer = "0.1.0"

	// HexProtocol versions the hex encoding accepted and emitted by the
	// library: lowercase output, optional 0x prefix and embedded spaces
	// on input.
	HexProtocol uint64 = 1
)

// GitCommitHash uses git rev-parse HEAD to find the commit hash, which
// is helpful when working with the biguint binary. Set via ldflags.
var GitCommitHash = ""
