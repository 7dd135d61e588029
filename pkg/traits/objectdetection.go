package traits

// ObjectDetection belongs to devices that can detect objects or people and
// send a notification to the user, such as doorbells and cameras. Detection
// events are pushed outside the QUERY/EXECUTE cycle, so the trait carries no
// methods; registering it announces the capability in SYNC.
type ObjectDetection interface{}
