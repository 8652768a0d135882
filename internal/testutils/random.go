package testutils

import (
	"fmt"
	"math/rand"
	"strings"
)

var alphabet = "azertyuiopqsdfghjklmwxcvbn"

var skills = []string{"go", "postgres", "docker", "kubernetes", "react", "nats"}

func Random(min, max int64) int64 {
	return min + rand.Int63n(max-min+1)
}

func RandomString(length int64) string {
	var sb strings.Builder
	k := len(alphabet)
	for i := 0; i < int(length); i++ {
		b := alphabet[rand.Intn(k)]
		sb.WriteByte(b)
	}
	return sb.String()
}

func RandomName() string {
	return RandomString(6) + " " + RandomString(8)
}

func RandomEmail() string {
	return fmt.Sprintf("%s@%s.com", RandomString(10), RandomString(6))
}

func RandomHandle() string {
	return RandomString(Random(4, 12))
}

// RandomText returns words of letters between min and max characters long.
func RandomText(min, max int64) string {
	n := int(Random(min, max))
	var sb strings.Builder
	for sb.Len() < n {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(RandomString(Random(2, 8)))
	}
	text := []byte(sb.String()[:n])
	if text[n-1] == ' ' {
		text[n-1] = 'x'
	}
	return string(text)
}

// RandomSkills returns a comma separated list of between min and max skills.
func RandomSkills(min, max int64) string {
	n := Random(min, max)
	picked := make([]string, 0, n)
	for i := int64(0); i < n; i++ {
		picked = append(picked, skills[rand.Intn(len(skills))])
	}
	return strings.Join(picked, ", ")
}
