package form

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/jgoulah/energycalc/pkg/models"
)

var yesNo = []string{"Yes", "No"}

// Prompter collects an Input interactively on a terminal
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// Collect asks for every field, starting from the given defaults
func (p *Prompter) Collect(defaults Input) (Input, error) {
	in := defaults
	var err error

	if in.Name, err = p.text("Enter your name", defaults.Name, validateRequired); err != nil {
		return Input{}, err
	}
	age, err := p.text("Enter your age", strconv.Itoa(defaults.Age), validateAge)
	if err != nil {
		return Input{}, err
	}
	in.Age, _ = strconv.Atoi(age)
	if in.Area, err = p.text("Enter your area", defaults.Area, validateRequired); err != nil {
		return Input{}, err
	}
	if in.City, err = p.text("Enter your city", defaults.City, validateRequired); err != nil {
		return Input{}, err
	}

	house, err := p.choose("Choose type of House", houseLabels(), string(defaults.HouseType))
	if err != nil {
		return Input{}, err
	}
	in.HouseType = models.HouseType(house)

	room, err := p.choose("Choose room type", roomLabels(), string(defaults.RoomType))
	if err != nil {
		return Input{}, err
	}
	in.RoomType = models.RoomType(room)

	day, err := p.choose("Select day for energy calculation", dayLabels(), string(defaults.Day))
	if err != nil {
		return Input{}, err
	}
	in.Day = models.Day(day)

	if in.HasAC, err = p.confirm("Do you have AC?", defaults.HasAC); err != nil {
		return Input{}, err
	}
	if in.HasAC {
		def := defaults.ACCount
		if def < MinACCount {
			def = MinACCount
		}
		count, err := p.text("How many ACs do you have?", strconv.Itoa(def), validateACCount)
		if err != nil {
			return Input{}, err
		}
		in.ACCount, _ = strconv.Atoi(count)
	}
	if in.HasFridge, err = p.confirm("Do you have Fridge?", defaults.HasFridge); err != nil {
		return Input{}, err
	}
	if in.HasWashingMachine, err = p.confirm("Do you have washing machine?", defaults.HasWashingMachine); err != nil {
		return Input{}, err
	}

	return in.Normalize(), nil
}

func (p *Prompter) text(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Validate:  validate,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	v, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompting %q: %w", label, err)
	}
	return strings.TrimSpace(v), nil
}

func (p *Prompter) choose(label string, items []string, def string) (string, error) {
	sel := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: indexOf(items, def),
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	_, v, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("prompting %q: %w", label, err)
	}
	return v, nil
}

func (p *Prompter) confirm(label string, def bool) (bool, error) {
	cur := "Yes"
	if !def {
		cur = "No"
	}
	v, err := p.choose(label, yesNo, cur)
	if err != nil {
		return false, err
	}
	return v == "Yes", nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validateAge(s string) error {
	return validateRange(s, MinAge, MaxAge)
}

func validateACCount(s string) error {
	return validateRange(s, MinACCount, MaxACCount)
}

func validateRange(s string, lo, hi int) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n < lo || n > hi {
		return fmt.Errorf("must be between %d and %d", lo, hi)
	}
	return nil
}

func houseLabels() []string {
	out := make([]string, 0, len(models.HouseTypes))
	for _, h := range models.HouseTypes {
		out = append(out, string(h))
	}
	return out
}

func roomLabels() []string {
	out := make([]string, 0, len(models.RoomTypes))
	for _, r := range models.RoomTypes {
		out = append(out, string(r))
	}
	return out
}

func dayLabels() []string {
	out := make([]string, 0, len(models.Week))
	for _, d := range models.Week {
		out = append(out, string(d))
	}
	return out
}

func indexOf(items []string, v string) int {
	for i, item := range items {
		if item == v {
			return i
		}
	}
	return 0
}
