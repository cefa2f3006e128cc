package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrSameLanguage    = errors.New("source and target languages must be different")
	ErrSessionFinished = errors.New("session finished")
)
