package errs

import "errors"

var (
	UnsupportedLanguage = errors.New("unsupported language. Allowed: java, python, cpp, javascript")
	ContestNotFound     = errors.New("contest not found")
	ProblemNotFound     = errors.New("problem not found")
	SubmissionNotFound  = errors.New("submission not found")
	UserNotFound        = errors.New("user not found")
)
