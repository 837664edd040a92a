package subcmd

import "strings"

// Flags that accept multiple tokens after a single occurrence, e.g.
// --admin-config retries=3 acks=all.
var multiTokenFlags = map[string]struct{}{
	"--admin-config": {},
	"--topic-props":  {},
}

// expandMultiTokenFlags rewrites an argument vector so that multi-token
// options become the repeated form that pflag understands:
//
//	--admin-config a=1 b=2  ->  --admin-config a=1 --admin-config b=2
//
// A token group ends at the next flag. Everything else passes through
// untouched.
func expandMultiTokenFlags(args []string) []string {
	expanded := make([]string, 0, len(args))

	activeFlag := ""
	expectValue := false

	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			name := arg
			attached := false
			if index := strings.Index(arg, "="); index >= 0 {
				name = arg[:index]
				attached = true
			}

			if _, ok := multiTokenFlags[name]; ok {
				activeFlag = name
				// In the --flag=value form the value is already
				// attached, so every following bare token needs
				// the flag name reinserted.
				expectValue = !attached
			} else {
				activeFlag = ""
				expectValue = false
			}

			expanded = append(expanded, arg)
			continue
		}

		if activeFlag != "" {
			if expectValue {
				// First token after the flag; pflag consumes it
				// naturally.
				expectValue = false
			} else {
				expanded = append(expanded, activeFlag)
			}
		}
		expanded = append(expanded, arg)
	}

	return expanded
}
