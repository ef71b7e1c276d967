package monitoring

import (
	"regexp"
	"strings"
)

// reFuncName captures package, receiver, and method names from a runtime
// function name such as "github.com/org/repo/pkg.(*Recv).Method".
var reFuncName = regexp.MustCompile(`(?:[^/]+/)*([^./]+)\.(?:\(?\*?([^.)]+)\)?\.)?(.+)$`)

func getSegmentName(fullFuncName string) string {
	matches := reFuncName.FindStringSubmatch(fullFuncName)
	if len(matches) < 4 {
		return fullFuncName
	}

	var parts []string
	for _, part := range matches[1:] {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ".")
}
