package errors

import stderrors "errors"

// Failure kinds that abort a compilation. Match with errors.Is.
var (
	// ErrDiscovery indicates the page root is missing or unreadable.
	ErrDiscovery = stderrors.New("page discovery failed")

	// ErrInvalidPage indicates a page descriptor failed schema validation.
	ErrInvalidPage = stderrors.New("invalid page descriptor")

	// ErrDuplicateEntry indicates two page descriptors share a name.
	ErrDuplicateEntry = stderrors.New("duplicate entry name")

	// ErrInvalidMode indicates an unrecognized build mode token.
	ErrInvalidMode = stderrors.New("invalid build mode")

	// ErrMissingTemplate indicates a page template does not exist at assembly time.
	ErrMissingTemplate = stderrors.New("missing html template")

	// ErrUnresolvableLoader indicates a loader or plugin package cannot be located.
	ErrUnresolvableLoader = stderrors.New("unresolvable loader")
)

// DiscoveryFailed reports an unreadable or missing page root.
func DiscoveryFailed(root string, cause error) *ClassifiedError {
	return WrapError(cause, CategoryDiscovery, ErrDiscovery.Error()).
		Fatal().
		WithKind(ErrDiscovery).
		WithContext("path", root).
		Build()
}

// InvalidPage reports a page descriptor with a missing or malformed field.
func InvalidPage(index int, name, field, reason string) *ClassifiedError {
	return ValidationError(ErrInvalidPage.Error()).
		WithKind(ErrInvalidPage).
		WithContext("index", index).
		WithContext("page", name).
		WithContext("field", field).
		WithContext("reason", reason).
		Build()
}

// DuplicateEntry reports two pages mapping to the same entry name.
func DuplicateEntry(name, firstEntry, secondEntry string) *ClassifiedError {
	return ValidationError(ErrDuplicateEntry.Error()).
		WithKind(ErrDuplicateEntry).
		WithContext("page", name).
		WithContext("first", firstEntry).
		WithContext("second", secondEntry).
		Build()
}

// InvalidMode reports an unrecognized mode token.
func InvalidMode(token string, accepted []string) *ClassifiedError {
	return ValidationError(ErrInvalidMode.Error()).
		WithKind(ErrInvalidMode).
		WithContext("mode", token).
		WithContext("accepted", accepted).
		Build()
}

// MissingTemplate reports a template path that does not exist.
func MissingTemplate(page, path string, cause error) *ClassifiedError {
	return WrapError(cause, CategoryTemplate, ErrMissingTemplate.Error()).
		Fatal().
		WithKind(ErrMissingTemplate).
		WithContext("page", page).
		WithContext("path", path).
		Build()
}

// UnresolvableLoader reports a chain step whose package is not installed.
func UnresolvableLoader(loader, searched string) *ClassifiedError {
	return NewError(CategoryLoader, ErrUnresolvableLoader.Error()).
		Fatal().
		WithKind(ErrUnresolvableLoader).
		WithContext("loader", loader).
		WithContext("path", searched).
		Build()
}
