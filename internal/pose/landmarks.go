// Package pose provides body pose detection interfaces and types for squat tracking.
package pose

// Body landmark indices following the MediaPipe Pose convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// Point represents a body landmark position in pixel coordinates.
// Visibility is the model's confidence (0.0-1.0) that the landmark
// is present and not occluded.
type Point struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// BodyLandmarks represents the 33 body landmarks detected by MediaPipe Pose.
type BodyLandmarks struct {
	Points [NumLandmarks]Point `json:"points"`
	Score  float64             `json:"score"`
}

// Side selects which side of the body a joint angle is computed for.
// The user is instructed to stand side-on, so only one side is tracked.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Valid reports whether s is a recognized body side.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// HipKneeAnkle returns the landmark indices for the hip, knee and ankle
// of this side.
func (s Side) HipKneeAnkle() (hip, knee, ankle int) {
	if s == SideRight {
		return RightHip, RightKnee, RightAnkle
	}
	return LeftHip, LeftKnee, LeftAnkle
}

// Connections lists landmark index pairs that form the drawable skeleton.
// The numbers are paired, so (11,13) means draw a line from the left
// shoulder to the left elbow.
var Connections = [][2]int{
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
	{LeftAnkle, LeftHeel},
	{LeftHeel, LeftFootIndex},
	{RightHip, RightKnee},
	{RightKnee, RightAnkle},
	{RightAnkle, RightHeel},
	{RightHeel, RightFootIndex},
}
