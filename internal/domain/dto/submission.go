package dto

// Submission is the raw, untyped data of a posted message. Every field may
// be empty; empty means absent.
type Submission struct {
	Name      string `form:"name"`
	Email     string `form:"email"`
	URL       string `form:"url"`
	Avatar    string `form:"avatar"`
	Latitude  string `form:"latitude"`
	Longitude string `form:"longitude"`
	Message   string `form:"message"`

	Image []byte `form:"-"`
}
