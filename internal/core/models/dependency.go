package models

// InstallState is the tri-state answer of an installed-state probe.
type InstallState string

const (
	StateInstalled    InstallState = "installed"
	StateNotInstalled InstallState = "not_installed"
	StateUnknown      InstallState = "unknown"
)

// InstallResult is the resolution of an installer call. Only ResultInstalled
// counts as success; every other resolution is a normal decline, not an error.
type InstallResult string

const (
	ResultInstalled InstallResult = "installed"
	ResultIgnore    InstallResult = "ignore"
	ResultDisabled  InstallResult = "disabled"
	ResultFailed    InstallResult = "failed"
)

// Outcome is the terminal result of the dependency installation workflow.
type Outcome string

const (
	// OutcomeOK means the dependency is satisfied and kernel startup may proceed.
	OutcomeOK Outcome = "ok"
	// OutcomeCancel means do not proceed. It covers user declines, user
	// cancellation and installer non-success alike; none of them are errors.
	OutcomeCancel Outcome = "cancel"
)
