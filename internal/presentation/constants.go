package presentation

const (
	IDParam    = "id"
	SizeParam  = "size"
	MaxParam   = "max"
	ImageField = "image"
	SizeKey    = "thumb_size"
	ReasonTag  = "X-Reason"
	JPEGType   = "image/jpeg"
)
