// Package console holds the interactive prompt helpers layered on top of
// the array utilities. Invalid input is re-prompted with a reminder; the
// helpers return the zero value once the input stream is exhausted.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/kabu1204/go-sortutil/assert"
)

type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

func (c *Console) scan(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) remind(reminder string) {
	fmt.Fprintln(c.out, reminder)
}

// Pause reads a line of input and discards it.
func (c *Console) Pause(prompt string) {
	c.scan(prompt)
}

func (c *Console) getString(prompt, reminder string) (string, bool) {
	for {
		line, ok := c.scan(prompt)
		if !ok {
			return "", false
		}
		if strings.TrimSpace(line) == "" {
			c.remind(reminder)
			continue
		}
		return line, true
	}
}

// GetString prompts until a non-blank line is entered.
func (c *Console) GetString(prompt, reminder string) string {
	line, _ := c.getString(prompt, reminder)
	return line
}

func (c *Console) getInt(prompt, reminder string) (int, bool) {
	for {
		line, ok := c.scan(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.remind(reminder)
			continue
		}
		return v, true
	}
}

// GetInt prompts until a valid integer is entered.
func (c *Console) GetInt(prompt, reminder string) int {
	v, _ := c.getInt(prompt, reminder)
	return v
}

// GetNonnegativeInt prompts until an integer >= 0 is entered, or >= 1 when
// includeZero is false.
func (c *Console) GetNonnegativeInt(prompt, reminder string, includeZero bool) int {
	lower := 1
	if includeZero {
		lower = 0
	}
	for {
		v, ok := c.getInt(prompt, reminder)
		if !ok {
			return 0
		}
		if v < lower {
			c.remind(reminder)
			continue
		}
		return v
	}
}

func (c *Console) getFloat(prompt, reminder string) (float64, bool) {
	for {
		line, ok := c.scan(prompt)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			c.remind(reminder)
			continue
		}
		return v, true
	}
}

// GetFloat prompts until a valid float is entered.
func (c *Console) GetFloat(prompt, reminder string) float64 {
	v, _ := c.getFloat(prompt, reminder)
	return v
}

// GetNonnegativeFloat prompts until a float >= 0 is entered, or >= 1 when
// includeZero is false.
func (c *Console) GetNonnegativeFloat(prompt, reminder string, includeZero bool) float64 {
	lower := 1.0
	if includeZero {
		lower = 0.0
	}
	for {
		v, ok := c.getFloat(prompt, reminder)
		if !ok {
			return 0
		}
		if v < lower {
			c.remind(reminder)
			continue
		}
		return v
	}
}

// GetOption prompts until one of options is entered. With sorted true the
// options are presented in ascending order, otherwise in insertion order.
func (c *Console) GetOption(prompt string, options []string, sorted bool) string {
	assert.NonNil(options)
	assert.That(len(options) > 0, "options set is empty")

	var set sets.Set
	if sorted {
		set = treeset.NewWithStringComparator()
	} else {
		set = linkedhashset.New()
	}
	for _, o := range options {
		set.Add(o)
	}

	values := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		values = append(values, v.(string))
	}
	group := "(" + strings.Join(values, "/") + ")"
	reminder := fmt.Sprintf("Please enter a valid option %s.", group)

	for {
		line, ok := c.getString(fmt.Sprintf("%s %s: ", prompt, group), reminder)
		if !ok {
			return ""
		}
		if !set.Contains(line) {
			fmt.Fprintf(c.out, "%q is not a valid option.\n", line)
			c.remind(reminder)
			continue
		}
		return line
	}
}

// GetBool prompts for one of two options, true when trueOption is chosen.
func (c *Console) GetBool(prompt, trueOption, falseOption string) bool {
	assert.NotBlank(trueOption)
	assert.NotBlank(falseOption)

	choice := c.GetOption(prompt, []string{trueOption, falseOption}, false)
	return strings.EqualFold(choice, trueOption)
}
