package document

import "errors"

var (
	ErrEmptyName        = errors.New("document name is empty")
	ErrNameHasSeparator = errors.New("document name must not contain a path separator")
	ErrHiddenName       = errors.New("document name must not start with a dot")
	ErrEmptyExtension   = errors.New("managed extension is empty")
	ErrBadExtension     = errors.New("managed extension must be a plain suffix")
)

// ParseExtension normalizes a configured extension, a leading dot is tolerated.
func ParseExtension(raw string) (Extension, error) {
	ext := Extension(trimLeadingDot(raw))
	if err := ext.Validate(); err != nil {
		return "", err
	}
	return ext, nil
}

func trimLeadingDot(s string) string {
	if len(s) > 0 && s[:1] == dot {
		return s[1:]
	}
	return s
}
