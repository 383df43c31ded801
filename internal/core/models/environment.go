package models

// KernelModule is the support module a kernel process needs before it can
// start. It is fixed for the whole workflow, not user supplied.
const KernelModule = "ipykernel"

// Environment identifies a target language runtime instance. It is owned by
// the caller and treated as immutable for the duration of a workflow call.
type Environment struct {
	DisplayName string `json:"display_name"`
	EnvName     string `json:"env_name"`
	Path        string `json:"path"`
}

// Label returns the name used for this environment in user-facing messages:
// display name first, then environment name, then the filesystem path.
func (e Environment) Label() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	if e.EnvName != "" {
		return e.EnvName
	}
	return e.Path
}

// InstallChannel is a capability able to install the kernel module, offered
// by a channel provider. Display names are unique within a provider response.
type InstallChannel struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
