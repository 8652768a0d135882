package subentity

import (
	"slices"

	"github.com/google/uuid"
)

// Identifiable is implemented by every sub-entry stored in a document array.
type Identifiable interface {
	EntryID() uuid.UUID
}

// Prepend returns a new list with entry at index 0; newest entries come first.
func Prepend[T any](list []T, entry T) []T {
	result := make([]T, 0, len(list)+1)
	result = append(result, entry)
	return append(result, list...)
}

// IndexOf returns the position of the entry with the given id, or -1.
func IndexOf[T Identifiable](list []T, id uuid.UUID) int {
	return slices.IndexFunc(list, func(entry T) bool { return entry.EntryID() == id })
}

// RemoveAt returns a copy of list without position index. The input is left untouched.
func RemoveAt[T any](list []T, index int) []T {
	result := make([]T, 0, len(list))
	result = append(result, list[:index]...)
	return append(result, list[index+1:]...)
}

// RemoveByID drops the entry with the given id. ok is false, and list is returned as is,
// when no entry matches.
func RemoveByID[T Identifiable](list []T, id uuid.UUID) (result []T, ok bool) {
	index := IndexOf(list, id)
	if index < 0 {
		return list, false
	}
	return RemoveAt(list, index), true
}

// IndexOfLike returns the position of the like left by user, or -1.
func IndexOfLike(likes []Like, user uuid.UUID) int {
	return slices.IndexFunc(likes, func(like Like) bool { return like.User == user })
}
