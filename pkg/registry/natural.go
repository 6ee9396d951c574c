package registry

import (
	"strconv"
	"unicode"
)

// naturalLess compares strings treating digit runs as numbers,
// so "shot2.jpg" sorts before "shot10.jpg"
func naturalLess(s1, s2 string) bool {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		if isDigit(s1[i]) && isDigit(s2[j]) {
			start1 := i
			for i < len(s1) && isDigit(s1[i]) {
				i++
			}
			start2 := j
			for j < len(s2) && isDigit(s2[j]) {
				j++
			}

			n1, _ := strconv.Atoi(s1[start1:i])
			n2, _ := strconv.Atoi(s2[start2:j])
			if n1 != n2 {
				return n1 < n2
			}
			continue
		}

		if s1[i] != s2[j] {
			return s1[i] < s2[j]
		}
		i++
		j++
	}

	return len(s1)-i < len(s2)-j
}

func isDigit(b byte) bool {
	return unicode.IsDigit(rune(b))
}
