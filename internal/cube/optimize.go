package cube

import (
	"fmt"
	"strings"
)

func quarterCount(tok string) (face string, count int, err error) {
	if len(tok) == 0 {
		return "", 0, fmt.Errorf("cube: empty move token")
	}
	face = tok[:1]
	if _, ok := faceMove[face]; !ok {
		return "", 0, fmt.Errorf("cube: unrecognized face %q", face)
	}
	switch {
	case len(tok) == 1:
		count = 1
	case tok[1:] == "2":
		count = 2
	case tok[1:] == "'":
		count = 3
	default:
		return "", 0, fmt.Errorf("cube: unrecognized move %q", tok)
	}
	return face, count, nil
}

func quarterToToken(face string, count int) string {
	switch count {
	case 1:
		return face
	case 2:
		return face + "2"
	case 3:
		return face + "'"
	default:
		return ""
	}
}

// Optimize collapses runs of same-face moves into a single token, the way
// the teacher's move optimizer folds repeated same-face turns, adapted
// here to the reduced 18-move vocabulary: R R becomes R2, R R R becomes
// R', and R2 R2 cancels outright.
func Optimize(algorithm string) (string, error) {
	fields := strings.Fields(algorithm)
	var out []string
	i := 0
	for i < len(fields) {
		face, count, err := quarterCount(fields[i])
		if err != nil {
			return "", err
		}
		j := i + 1
		for j < len(fields) {
			f2, c2, err := quarterCount(fields[j])
			if err != nil {
				return "", err
			}
			if f2 != face {
				break
			}
			count = (count + c2) % 4
			j++
		}
		if tok := quarterToToken(face, count); tok != "" {
			out = append(out, tok)
		}
		i = j
	}
	return strings.Join(out, " "), nil
}
