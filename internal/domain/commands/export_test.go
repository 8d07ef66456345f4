package commands

// RenderPosixScript exports renderPosixScript for testing.
var RenderPosixScript = renderPosixScript //nolint:gochecknoglobals // test export

// RenderPowerShellScript exports renderPowerShellScript for testing.
var RenderPowerShellScript = renderPowerShellScript //nolint:gochecknoglobals // test export

// PosixQuote exports posixQuote for testing.
var PosixQuote = posixQuote //nolint:gochecknoglobals // test export

// PowerShellQuote exports powerShellQuote for testing.
var PowerShellQuote = powerShellQuote //nolint:gochecknoglobals // test export
