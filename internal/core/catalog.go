package core

import (
	"path/filepath"
	"strings"
)

// InsertOutcome is the defined result of a catalog insert. A duplicate
// content reference is an outcome, not an error.
type InsertOutcome string

const (
	OutcomeInserted      InsertOutcome = "inserted"
	OutcomeAlreadyExists InsertOutcome = "already_present"
)

// allowedMediaSuffixes is the fixed allow-list of content reference file
// suffixes (video plus common archive/executable containers).
var allowedMediaSuffixes = map[string]struct{}{
	".avi": {},
	".mkv": {},
	".mp4": {},
	".mov": {},
	".flv": {},
	".wmv": {},
	".exe": {},
	".zip": {},
	".rar": {},
	".7z":  {},
}

// IsAllowedMediaName reports whether a content reference file name carries an
// accepted suffix. Matching is case-insensitive.
func IsAllowedMediaName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := allowedMediaSuffixes[ext]
	return ok
}
