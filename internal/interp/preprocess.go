package interp

import (
	"strings"

	"github.com/jemacalalad/lolcode/internal/errors"
)

// Preprocess implements spec.md §4.1: it strips comments (single-line BTW,
// multi-line OBTW/TLDR, blank lines) and then locates the program's HAI
// and KTHXBYE delimiters, returning the comment-and-blank-free interior
// between them (exclusive of both delimiter lines).
//
// A bare HAI line may carry trailing tokens (e.g. a version marker); they
// are accepted and ignored, per SPEC_FULL.md §6's supplemented behavior.
func Preprocess(source string) ([]string, *errors.Diagnostic) {
	lines := strings.Split(source, "\n")
	stripped := make([]string, len(lines))
	copy(stripped, lines)

	inBlockComment := false
	for i, line := range stripped {
		switch {
		case inBlockComment:
			if tldrRe.MatchString(line) {
				inBlockComment = false
			}
			stripped[i] = ""
		case tldrRe.MatchString(line):
			return nil, errors.New(errors.UnpairedOBTW, "")
		case obtwRe.MatchString(line):
			inBlockComment = true
			stripped[i] = ""
		case btwRe.MatchString(line):
			stripped[i] = btwRe.Split(line, 2)[0]
		case blankRe.MatchString(line):
			stripped[i] = ""
		}
	}
	if inBlockComment {
		return nil, errors.New(errors.UnpairedOBTW, "")
	}

	haiIndex := -1
	kthxIndex := -1
	for i, line := range stripped {
		switch {
		case haiRe.MatchString(line):
			if haiIndex != -1 {
				return nil, errors.New(errors.DoubleHAI, "")
			}
			haiIndex = i
		case haiIndex != -1 && kthxbyeRe.MatchString(line):
			if kthxIndex != -1 {
				return nil, errors.New(errors.DoubleKTHXBYE, "")
			}
			kthxIndex = i
		}
	}
	if haiIndex == -1 {
		return nil, errors.New(errors.NoHAI, "")
	}
	if kthxIndex == -1 {
		return nil, errors.New(errors.NoKTHXBYE, "")
	}

	interior := make([]string, 0, kthxIndex-haiIndex)
	for i := haiIndex + 1; i < kthxIndex; i++ {
		if strings.TrimSpace(stripped[i]) != "" {
			interior = append(interior, stripped[i])
		}
	}
	return interior, nil
}
