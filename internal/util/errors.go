package util

import "errors"

var (
	ErrUnauthenticated    = errors.New("no authenticated user")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrQuestionIntegrity  = errors.New("question must have exactly one correct option")
	ErrSessionIncomplete  = errors.New("every question needs an answer before submission")
	ErrNoQuestions        = errors.New("lesson has no questions")
)
