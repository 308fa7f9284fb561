package document

import "strings"

// FileName appends the extension unconditionally, a name already ending in it gets it twice.
func (e Extension) FileName(name Name) string {
	return string(name) + e.Suffix()
}

// NameOf strips the managed extension from a file name.
// File names without the extension are returned unchanged.
func (e Extension) NameOf(fileName string) Name {
	return Name(strings.TrimSuffix(fileName, e.Suffix()))
}
