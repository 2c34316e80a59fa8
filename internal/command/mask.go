package command

import "regexp"

// Credential-carrying command shapes that must never reach persistent logs.
var (
	// echo 'user:password' | chpasswd
	chpasswdPattern = regexp.MustCompile(`(echo\s+['"])[^:'"]+:[^'"]+(['"].*chpasswd)`)

	// echo 'password' | sudo -S ...
	sudoStdinPattern = regexp.MustCompile(`(echo\s+['"])[^'"]+(['"].*sudo\s+-S)`)
)

// Mask substitutes credentials embedded in the command text so raw secrets
// never appear in log output.
func Mask(cmdText string) string {
	masked := chpasswdPattern.ReplaceAllString(cmdText, `${1}***:***${2}`)
	masked = sudoStdinPattern.ReplaceAllString(masked, `${1}***${2}`)
	return masked
}
