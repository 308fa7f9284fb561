package document

// Name is the user-facing identifier of a document without the file extension.
// Casing is preserved for display but ignored when names are compared.
type Name string

// Extension is the managed file suffix without the leading dot, e.g. "txt".
type Extension string

const DefaultExtension Extension = "txt"

const dot = "."
