package errors

var (
	// MjrCommon is the major classification for the common errors.
	MjrCommon Major
	// ClassInvalidArgument is the classification for the errors caused by invalid
	// argument values provided by the caller.
	ClassInvalidArgument Class

	// MjrInternal is the major classification for the internal errors.
	MjrInternal Major
	// ClassInternal is the classification for unexpected internal failures.
	ClassInternal Class
)

func init() {
	registerClasses()
}

func registerClasses() {
	MjrCommon = MustNewMajor()
	ClassInvalidArgument = MustNewMajorClass(MjrCommon)

	MjrInternal = MustNewMajor()
	ClassInternal = MustNewMajorClass(MjrInternal)
}
