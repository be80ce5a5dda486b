package pose

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	mu    sync.Mutex
	body  *BodyLandmarks
	queue []*BodyLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetPose sets the body landmarks that will be returned by Detect.
// Pass nil to simulate a frame with no body in it.
func (m *MockDetector) SetPose(body *BodyLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.body = body
}

// SetSequence queues a series of detection results. Each call to Detect
// consumes one entry; once the queue is drained Detect falls back to the
// pose set via SetPose. A nil entry simulates a missing body.
func (m *MockDetector) SetSequence(bodies []*BodyLandmarks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append([]*BodyLandmarks(nil), bodies...)
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Detect returns the pre-configured landmarks or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*BodyLandmarks, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if len(m.queue) > 0 {
		body := m.queue[0]
		m.queue = m.queue[1:]
		return body, nil
	}
	return m.body, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// StandingLandmarks returns a preset BodyLandmarks for a person standing
// upright, side-on, on a 640x480 frame. The knee angle on both sides is
// close to 180 degrees.
func StandingLandmarks() *BodyLandmarks {
	lm := &BodyLandmarks{Score: 0.95}

	head := Point{X: 320, Y: 60, Z: 0, Visibility: 0.95}
	for i := Nose; i <= MouthRight; i++ {
		lm.Points[i] = head
	}

	set := func(idx int, x, y float64) {
		lm.Points[idx] = Point{X: x, Y: y, Z: 0, Visibility: 0.95}
	}

	set(LeftShoulder, 324, 110)
	set(RightShoulder, 316, 110)
	set(LeftElbow, 328, 170)
	set(RightElbow, 312, 170)
	set(LeftWrist, 330, 225)
	set(RightWrist, 310, 225)
	set(LeftHip, 322, 240)
	set(RightHip, 318, 240)
	set(LeftKnee, 320, 340)
	set(RightKnee, 318, 340)
	set(LeftAnkle, 320, 440)
	set(RightAnkle, 318, 440)
	set(LeftHeel, 314, 452)
	set(RightHeel, 312, 452)
	set(LeftFootIndex, 344, 456)
	set(RightFootIndex, 342, 456)

	return lm
}

// SquatBottomLandmarks returns a preset BodyLandmarks for a person at the
// bottom of a squat, side-on, on a 640x480 frame. The knee angle on both
// sides is close to 98 degrees.
func SquatBottomLandmarks() *BodyLandmarks {
	lm := &BodyLandmarks{Score: 0.93}

	head := Point{X: 355, Y: 220, Z: 0, Visibility: 0.95}
	for i := Nose; i <= MouthRight; i++ {
		lm.Points[i] = head
	}

	set := func(idx int, x, y float64) {
		lm.Points[idx] = Point{X: x, Y: y, Z: 0, Visibility: 0.95}
	}

	set(LeftShoulder, 358, 260)
	set(RightShoulder, 352, 260)
	set(LeftElbow, 380, 290)
	set(RightElbow, 376, 290)
	set(LeftWrist, 400, 280)
	set(RightWrist, 396, 280)
	set(LeftHip, 360, 330)
	set(RightHip, 356, 330)
	set(LeftKnee, 320, 340)
	set(RightKnee, 316, 340)
	set(LeftAnkle, 330, 430)
	set(RightAnkle, 326, 430)
	set(LeftHeel, 322, 444)
	set(RightHeel, 318, 444)
	set(LeftFootIndex, 352, 448)
	set(RightFootIndex, 348, 448)

	return lm
}

// HalfSquatLandmarks returns a preset BodyLandmarks partway through the
// descent, with a knee angle around 156 degrees: below the standing
// threshold, above the squat-bottom threshold.
func HalfSquatLandmarks() *BodyLandmarks {
	lm := &BodyLandmarks{Score: 0.94}

	head := Point{X: 345, Y: 150, Z: 0, Visibility: 0.95}
	for i := Nose; i <= MouthRight; i++ {
		lm.Points[i] = head
	}

	set := func(idx int, x, y float64) {
		lm.Points[idx] = Point{X: x, Y: y, Z: 0, Visibility: 0.95}
	}

	set(LeftShoulder, 348, 190)
	set(RightShoulder, 342, 190)
	set(LeftElbow, 360, 240)
	set(RightElbow, 356, 240)
	set(LeftWrist, 368, 285)
	set(RightWrist, 364, 285)
	set(LeftHip, 350, 260)
	set(RightHip, 346, 260)
	set(LeftKnee, 320, 340)
	set(RightKnee, 316, 340)
	set(LeftAnkle, 325, 430)
	set(RightAnkle, 321, 430)
	set(LeftHeel, 317, 444)
	set(RightHeel, 313, 444)
	set(LeftFootIndex, 347, 448)
	set(RightFootIndex, 343, 448)

	return lm
}
