package exercises

import (
	"slices"
	"time"

	"github.com/2beens/posecoach/internal/pose"
)

// Category can be one of:
//   - strength
//   - cardio
//   - flexibility
//   - test (camera / setup checks, not a real workout)
type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
	CategoryTest        Category = "test"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStrength,
		CategoryCardio,
		CategoryFlexibility,
		CategoryTest:
		return true
	default:
		return false
	}
}

var MuscleGroup = struct {
	Biceps    string
	Triceps   string
	Back      string
	Legs      string
	Chest     string
	Shoulders string
	Core      string
	FullBody  string
	Other     string
}{
	Biceps:    "biceps",
	Triceps:   "triceps",
	Back:      "back",
	Legs:      "legs",
	Chest:     "chest",
	Shoulders: "shoulders",
	Core:      "core",
	FullBody:  "full_body",
	Other:     "other",
}

var MuscleGroups = []string{
	MuscleGroup.Biceps,
	MuscleGroup.Triceps,
	MuscleGroup.Back,
	MuscleGroup.Legs,
	MuscleGroup.Chest,
	MuscleGroup.Shoulders,
	MuscleGroup.Core,
	MuscleGroup.FullBody,
	MuscleGroup.Other,
}

// FormCheck compares the angle at Points[1] (the vertex) against the
// inclusive range [Min, Max] degrees. Message is shown when the angle falls outside.
type FormCheck struct {
	Name    string               `json:"name"`
	Points  [3]pose.KeypointName `json:"points"`
	Min     float64              `json:"min"`
	Max     float64              `json:"max"`
	Message string               `json:"message"`
}

// Vertex is the keypoint the angle is measured at.
func (fc FormCheck) Vertex() pose.KeypointName {
	return fc.Points[1]
}

func (fc FormCheck) InRange(angle float64) bool {
	return angle >= fc.Min && angle <= fc.Max
}

// Definition describes one supported exercise. The completion goal is either
// TargetReps or TargetDuration, never both.
type Definition struct {
	Slug              string              `json:"slug"`
	Name              string              `json:"name"`
	Category          Category            `json:"category"`
	MuscleGroup       string              `json:"muscleGroup"`
	Description       string              `json:"description"`
	RequiredKeypoints []pose.KeypointName `json:"requiredKeypoints"`
	TargetReps        int                 `json:"targetReps,omitempty"`
	TargetDuration    time.Duration       `json:"-"`
	Checks            []FormCheck         `json:"checks"`
}

func (d Definition) IsDurationBased() bool {
	return d.TargetDuration > 0
}

func (d Definition) IsRepBased() bool {
	return d.TargetReps > 0
}

func (d Definition) clone() Definition {
	d.RequiredKeypoints = slices.Clone(d.RequiredKeypoints)
	d.Checks = slices.Clone(d.Checks)
	return d
}
