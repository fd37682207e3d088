package exercises

import (
	"time"

	"github.com/2beens/posecoach/internal/pose"
)

// Side-on exercises are checked on the left side of the body,
// the camera is expected to see the user's left profile.
func defaultDefinitions() []Definition {
	return []Definition{
		{
			Name:        "Push-ups",
			Category:    CategoryStrength,
			MuscleGroup: MuscleGroup.Chest,
			Description: "Lower your body until your elbows bend to 90 degrees while keeping a straight line from shoulders to ankles.",
			RequiredKeypoints: []pose.KeypointName{
				pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist, pose.LeftHip, pose.LeftAnkle,
			},
			TargetReps: 10,
			Checks: []FormCheck{
				{
					Name:    "elbow",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
					Min:     85,
					Max:     95,
					Message: "Lower your chest until your elbows reach 90 degrees",
				},
				{
					Name:    "back",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftHip, pose.LeftAnkle},
					Min:     160,
					Max:     180,
					Message: "Keep your back straight",
				},
			},
		},
		{
			Name:        "Squats",
			Category:    CategoryStrength,
			MuscleGroup: MuscleGroup.Legs,
			Description: "Sit back and down until your thighs are parallel to the floor, chest up.",
			RequiredKeypoints: []pose.KeypointName{
				pose.LeftShoulder, pose.LeftHip, pose.LeftKnee, pose.LeftAnkle,
			},
			TargetReps: 15,
			Checks: []FormCheck{
				{
					Name:    "knee",
					Points:  [3]pose.KeypointName{pose.LeftHip, pose.LeftKnee, pose.LeftAnkle},
					Min:     70,
					Max:     100,
					Message: "Squat deeper, aim for thighs parallel to the floor",
				},
				{
					Name:    "hip",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftHip, pose.LeftKnee},
					Min:     50,
					Max:     100,
					Message: "Keep your chest up and push your hips back",
				},
			},
		},
		{
			Name:        "Lunges",
			Category:    CategoryStrength,
			MuscleGroup: MuscleGroup.Legs,
			Description: "Step forward and lower until both knees are bent at about 90 degrees.",
			RequiredKeypoints: []pose.KeypointName{
				pose.LeftShoulder,
				pose.LeftHip, pose.LeftKnee, pose.LeftAnkle,
				pose.RightHip, pose.RightKnee, pose.RightAnkle,
			},
			TargetReps: 12,
			Checks: []FormCheck{
				{
					Name:    "front-knee",
					Points:  [3]pose.KeypointName{pose.LeftHip, pose.LeftKnee, pose.LeftAnkle},
					Min:     80,
					Max:     100,
					Message: "Bend your front knee to 90 degrees",
				},
				{
					Name:    "back-knee",
					Points:  [3]pose.KeypointName{pose.RightHip, pose.RightKnee, pose.RightAnkle},
					Min:     80,
					Max:     110,
					Message: "Lower your back knee towards the floor",
				},
				{
					Name:    "torso",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftHip, pose.LeftKnee},
					Min:     80,
					Max:     120,
					Message: "Keep your torso upright",
				},
			},
		},
		{
			Name:        "Bicep Curls",
			Category:    CategoryStrength,
			MuscleGroup: MuscleGroup.Biceps,
			Description: "Curl the weight up to your shoulder without swinging your upper arm.",
			RequiredKeypoints: []pose.KeypointName{
				pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist, pose.LeftHip,
			},
			TargetReps: 12,
			Checks: []FormCheck{
				{
					Name:    "curl",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
					Min:     30,
					Max:     60,
					Message: "Curl the weight all the way up",
				},
				{
					Name:    "upper-arm",
					Points:  [3]pose.KeypointName{pose.LeftHip, pose.LeftShoulder, pose.LeftElbow},
					Min:     0,
					Max:     25,
					Message: "Keep your elbow close to your body",
				},
			},
		},
		{
			Name:        "Shoulder Press",
			Category:    CategoryStrength,
			MuscleGroup: MuscleGroup.Shoulders,
			Description: "Press both weights overhead until your arms are fully extended.",
			RequiredKeypoints: []pose.KeypointName{
				pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist,
				pose.RightShoulder, pose.RightElbow, pose.RightWrist,
			},
			TargetReps: 10,
			Checks: []FormCheck{
				{
					Name:    "left-arm",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
					Min:     160,
					Max:     180,
					Message: "Fully extend your left arm",
				},
				{
					Name:    "right-arm",
					Points:  [3]pose.KeypointName{pose.RightShoulder, pose.RightElbow, pose.RightWrist},
					Min:     160,
					Max:     180,
					Message: "Fully extend your right arm",
				},
			},
		},
		{
			Name:        "Plank",
			Category:    CategoryStrength,
			MuscleGroup: MuscleGroup.Core,
			Description: "Hold a straight line from shoulders to ankles, elbows under shoulders.",
			RequiredKeypoints: []pose.KeypointName{
				pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist, pose.LeftHip, pose.LeftAnkle,
			},
			TargetDuration: 30 * time.Second,
			Checks: []FormCheck{
				{
					Name:    "body-line",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftHip, pose.LeftAnkle},
					Min:     165,
					Max:     180,
					Message: "Keep your hips in line with your shoulders",
				},
				{
					Name:    "elbow",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
					Min:     75,
					Max:     105,
					Message: "Keep your elbows under your shoulders",
				},
			},
		},
		{
			Name:        "Jumping Jacks",
			Category:    CategoryCardio,
			MuscleGroup: MuscleGroup.FullBody,
			Description: "Jump your feet out while raising straight arms overhead, then return.",
			RequiredKeypoints: []pose.KeypointName{
				pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist,
				pose.RightShoulder, pose.RightElbow, pose.RightWrist,
				pose.LeftAnkle, pose.RightAnkle,
			},
			TargetDuration: 45 * time.Second,
			Checks: []FormCheck{
				{
					Name:    "left-arm",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftElbow, pose.LeftWrist},
					Min:     140,
					Max:     180,
					Message: "Keep your arms straight",
				},
				{
					Name:    "right-arm",
					Points:  [3]pose.KeypointName{pose.RightShoulder, pose.RightElbow, pose.RightWrist},
					Min:     140,
					Max:     180,
					Message: "Keep your arms straight",
				},
			},
		},
		{
			Name:        "Hamstring Stretch",
			Category:    CategoryFlexibility,
			MuscleGroup: MuscleGroup.Legs,
			Description: "Hinge forward from the hips with straight legs and hold.",
			RequiredKeypoints: []pose.KeypointName{
				pose.LeftShoulder, pose.LeftHip, pose.LeftKnee, pose.LeftAnkle,
			},
			TargetDuration: 30 * time.Second,
			Checks: []FormCheck{
				{
					Name:    "knee",
					Points:  [3]pose.KeypointName{pose.LeftHip, pose.LeftKnee, pose.LeftAnkle},
					Min:     160,
					Max:     180,
					Message: "Keep your legs straight",
				},
				{
					Name:    "hip-hinge",
					Points:  [3]pose.KeypointName{pose.LeftShoulder, pose.LeftHip, pose.LeftKnee},
					Min:     0,
					Max:     90,
					Message: "Hinge forward from your hips",
				},
			},
		},
		{
			Name:        "Calibration",
			Category:    CategoryTest,
			MuscleGroup: MuscleGroup.Other,
			Description: "Stand still with your whole body in view to check the camera setup.",
			RequiredKeypoints: []pose.KeypointName{
				pose.Nose,
				pose.LeftShoulder, pose.RightShoulder,
				pose.LeftHip, pose.RightHip,
				pose.LeftAnkle, pose.RightAnkle,
			},
			TargetReps: 1,
		},
	}
}
