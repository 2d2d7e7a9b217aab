package advisor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt asks for the points of every known skill, one line per skill.
// Input stops at the first value that is not an integer.
func Prompt(in io.Reader, out io.Writer) ([]SkillInput, error) {
	if in == nil || out == nil {
		return nil, errors.New("prompt input and output required")
	}

	sc := bufio.NewScanner(in)
	list := make([]SkillInput, 0, len(KnownSkills))

	for _, skill := range KnownSkills {
		if _, err := fmt.Fprintf(out, "\t%s: ", Capitalize(skill)); err != nil {
			return nil, fmt.Errorf("writing prompt: %w", err)
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading %s: %w", skill, err)
			}
			return nil, fmt.Errorf("%w: no value entered for %s", ErrInvalidValue, skill)
		}

		line := strings.TrimSpace(sc.Text())
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %q for %s is not an integer", ErrInvalidValue, line, skill)
		}

		list = append(list, SkillInput{Skill: skill, Value: v})
	}

	return list, nil
}
