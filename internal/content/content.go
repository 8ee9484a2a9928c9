// Package content holds the data rendered on the page: profile text,
// experience, projects and skills. The page renders every sequence in the
// order given here.
package content

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid portfolio content")

type Portfolio struct {
	Profile    Profile      `yaml:"profile" json:"profile" validate:"required"`
	Experience []Experience `yaml:"experience" json:"experience" validate:"dive"`
	Projects   []Project    `yaml:"projects" json:"projects" validate:"dive"`
	Skills     []Skill      `yaml:"skills" json:"skills" validate:"dive"`
}

type Profile struct {
	Name    string   `yaml:"name" json:"name" validate:"required"`
	Roles   []string `yaml:"roles" json:"roles" validate:"dive,required"`
	About   []string `yaml:"about" json:"about"`
	Tags    []Tag    `yaml:"tags" json:"tags" validate:"dive"`
	Contact Contact  `yaml:"contact" json:"contact"`
	Social  []Link   `yaml:"social" json:"social" validate:"dive"`
	Footer  string   `yaml:"footer" json:"footer"`
}

type Tag struct {
	Icon  string `yaml:"icon" json:"icon"`
	Label string `yaml:"label" json:"label" validate:"required"`
}

type Contact struct {
	Intro        string `yaml:"intro" json:"intro"`
	Email        string `yaml:"email" json:"email" validate:"omitempty,email"`
	Phone        string `yaml:"phone" json:"phone"`
	Location     string `yaml:"location" json:"location"`
	Confirmation string `yaml:"confirmation" json:"confirmation"`
}

type Link struct {
	Label string `yaml:"label" json:"label" validate:"required"`
	Icon  string `yaml:"icon" json:"icon"`
	URL   string `yaml:"url" json:"url" validate:"required"`
}

type Experience struct {
	Title    string   `yaml:"title" json:"title" validate:"required"`
	Company  string   `yaml:"company" json:"company" validate:"required"`
	Period   string   `yaml:"period" json:"period"`
	Location string   `yaml:"location" json:"location"`
	Bullets  []string `yaml:"bullets" json:"bullets"`
	Tech     []string `yaml:"tech" json:"tech"`
	Icon     string   `yaml:"icon,omitempty" json:"icon,omitempty"`
}

type Project struct {
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
	Image       string   `yaml:"image" json:"image"`
	Demo        string   `yaml:"demo" json:"demo"`
	GitHub      string   `yaml:"github" json:"github"`
	Private     bool     `yaml:"private,omitempty" json:"private,omitempty"`
}

type Skill struct {
	Name  string `yaml:"name" json:"name" validate:"required"`
	Level int    `yaml:"level" json:"level" validate:"gte=0,lte=100"`
	Color string `yaml:"color" json:"color" validate:"omitempty,hexcolor"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks p and returns an error wrapping ErrInvalid listing every
// failing field.
func (p *Portfolio) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
