package helper

import "regexp"

// ProjectIDRegex follows the Google Cloud project id rules: 6-30 chars,
// lowercase letters, digits and hyphens, starting with a letter.
var ProjectIDRegex = regexp.MustCompile(`^[a-z][a-z0-9-]{4,28}[a-z0-9]$`)

func IsValidProjectID(s string) bool {
	return ProjectIDRegex.MatchString(s)
}
