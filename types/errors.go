package types

import "fmt"

// ValidationError reports a missing or invalid argument. It is raised before
// any remote call is attempted.
type ValidationError struct {
	Message string
}

func (validationError *ValidationError) Error() string {
	return validationError.Message
}

// NotFoundError reports an unknown property ID or an unconfigured table role.
type NotFoundError struct {
	Kind string
	ID   string
}

func (notFoundError *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", notFoundError.Kind, notFoundError.ID)
}

// RemoteError carries a non-success response from the remote store.
type RemoteError struct {
	Status  int
	Message string
}

func (remoteError *RemoteError) Error() string {
	return fmt.Sprintf("remote store returned status %d: %s", remoteError.Status, remoteError.Message)
}

// ConfigurationError reports an unusable process configuration, such as no
// properties being configured at all.
type ConfigurationError struct {
	Message string
}

func (configurationError *ConfigurationError) Error() string {
	return configurationError.Message
}
