package exercises

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrExerciseNotFound = errors.New("exercise not supported")
	ErrInvalidExercise  = errors.New("invalid exercise definition")
)

// Catalog is the immutable lookup table of supported exercises.
// It is built once at startup and shared by reference, it is safe for concurrent use.
type Catalog struct {
	bySlug map[string]Definition
	order  []string
}

// NewCatalog validates the definitions and indexes them by slug.
// An empty Slug is derived from Name.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{
		bySlug: make(map[string]Definition, len(defs)),
		order:  make([]string, 0, len(defs)),
	}

	for _, def := range defs {
		if def.Slug == "" {
			def.Slug = Slugify(def.Name)
		} else {
			def.Slug = Slugify(def.Slug)
		}

		if err := validate(def); err != nil {
			return nil, fmt.Errorf("%w [%s]: %w", ErrInvalidExercise, def.Slug, err)
		}
		if _, exists := c.bySlug[def.Slug]; exists {
			return nil, fmt.Errorf("%w: duplicate slug %s", ErrInvalidExercise, def.Slug)
		}

		c.bySlug[def.Slug] = def.clone()
		c.order = append(c.order, def.Slug)
	}

	return c, nil
}

// NewDefaultCatalog returns the canonical built-in exercise set.
func NewDefaultCatalog() (*Catalog, error) {
	return NewCatalog(defaultDefinitions()...)
}

// Lookup resolves an exercise by slug or display name.
func (c *Catalog) Lookup(nameOrSlug string) (Definition, error) {
	def, ok := c.bySlug[Slugify(nameOrSlug)]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrExerciseNotFound, nameOrSlug)
	}
	return def.clone(), nil
}

// List returns all definitions in catalog order.
func (c *Catalog) List() []Definition {
	defs := make([]Definition, 0, len(c.order))
	for _, slug := range c.order {
		defs = append(defs, c.bySlug[slug].clone())
	}
	return defs
}

func (c *Catalog) Len() int {
	return len(c.order)
}

func validate(def Definition) error {
	if def.Slug == "" || def.Name == "" {
		return errors.New("slug and name are required")
	}
	if !def.Category.IsValid() {
		return fmt.Errorf("unknown category %q", def.Category)
	}
	if def.MuscleGroup != "" && !slices.Contains(MuscleGroups, def.MuscleGroup) {
		return fmt.Errorf("unknown muscle group %q", def.MuscleGroup)
	}

	switch {
	case def.TargetReps < 0 || def.TargetDuration < 0:
		return errors.New("negative goal")
	case def.IsRepBased() && def.IsDurationBased():
		return errors.New("target reps and target duration are mutually exclusive")
	case !def.IsRepBased() && !def.IsDurationBased():
		return errors.New("either target reps or target duration is required")
	}

	for _, kp := range def.RequiredKeypoints {
		if !kp.IsValid() {
			return fmt.Errorf("unknown required keypoint %q", kp)
		}
	}

	for _, check := range def.Checks {
		for _, kp := range check.Points {
			if !kp.IsValid() {
				return fmt.Errorf("check %s: unknown keypoint %q", check.Name, kp)
			}
		}
		if check.Min > check.Max {
			return fmt.Errorf("check %s: min %.1f greater than max %.1f", check.Name, check.Min, check.Max)
		}
		if check.Message == "" {
			return fmt.Errorf("check %s: corrective message is required", check.Name)
		}
	}

	return nil
}
