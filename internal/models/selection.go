package models

// AppSelection is an opaque descriptor of the apps and categories the user has
// chosen to restrict. The engine never inspects individual entries; it hands
// the whole selection to the restriction applier.
type AppSelection struct {
	// AppIDs are platform identifiers of individually selected apps
	AppIDs []string

	// CategoryIDs are platform identifiers of selected app categories
	CategoryIDs []string
}

// IsEmpty reports whether the selection contains no apps or categories
func (s *AppSelection) IsEmpty() bool {
	return s == nil || (len(s.AppIDs) == 0 && len(s.CategoryIDs) == 0)
}
