package model

// ImageFile is an uploaded image as received from a multipart request.
type ImageFile struct {
	Filename string
	Data     []byte
}

func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
