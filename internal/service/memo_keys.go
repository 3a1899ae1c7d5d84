package service

import "fmt"

// Request memo keys. Every key of an entity kind for a user starts with
// the same prefix so writes can drop them together.
func memoPrefix(kind string, userID int64) string {
	return fmt.Sprintf("%s:%d:", kind, userID)
}

func memoKey(kind string, userID int64, parts ...any) string {
	key := memoPrefix(kind, userID)
	for i, part := range parts {
		if i > 0 {
			key += ":"
		}
		key += fmt.Sprint(part)
	}
	return key
}
