package pose

// Bone connects two keypoints when drawing the skeleton.
type Bone struct {
	From KeypointName
	To   KeypointName
}

// Skeleton lists the bones drawn on the overlay (face excluded).
var Skeleton = []Bone{
	{LeftShoulder, RightShoulder},
	{LeftShoulder, LeftElbow},
	{LeftElbow, LeftWrist},
	{RightShoulder, RightElbow},
	{RightElbow, RightWrist},
	{LeftShoulder, LeftHip},
	{RightShoulder, RightHip},
	{LeftHip, RightHip},
	{LeftHip, LeftKnee},
	{LeftKnee, LeftAnkle},
	{RightHip, RightKnee},
	{RightKnee, RightAnkle},
}
