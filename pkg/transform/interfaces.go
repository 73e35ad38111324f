package transform

// Transform exposes the mutable spatial state of an engine object.
// Implementations own the storage; the helpers in this package only read
// a vector, change one component and write it back.
type Transform interface {
	Position() Vec3
	SetPosition(Vec3)

	EulerAngles() Vec3
	SetEulerAngles(Vec3)
}
