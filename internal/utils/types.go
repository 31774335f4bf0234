package util

import "strings"

// PageID represents an opaque page token taken verbatim from a reference string
type PageID string

// PageIDs converts raw tokens to page identifiers
func PageIDs(tokens ...string) []PageID {
	ids := make([]PageID, len(tokens))
	for i, tok := range tokens {
		ids[i] = PageID(tok)
	}
	return ids
}

// JoinPageIDs renders pages separated by a single space
func JoinPageIDs(ids []PageID) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(id))
	}
	return sb.String()
}

// ErrorType represents different kinds of validation failures
type ErrorType int

const (
	ErrTypeInvalidInput ErrorType = iota
	ErrTypeInvalidCapacity
	ErrTypeUnknownPolicy
	ErrTypeInvalidRecord
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidInput:
		return "invalid input"
	case ErrTypeInvalidCapacity:
		return "invalid capacity"
	case ErrTypeUnknownPolicy:
		return "unknown policy"
	case ErrTypeInvalidRecord:
		return "invalid record"
	}
	return "unknown"
}
