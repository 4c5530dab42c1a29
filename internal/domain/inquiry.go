package domain

const (
	// CollectionInquiry is the document store collection holding submissions
	CollectionInquiry = "inquiry"
	// DefaultSource is used when a submission does not name its origin
	DefaultSource = "website"
	// DefaultContentType is used for attachments without a declared type
	DefaultContentType = "application/octet-stream"
)

// InquiryFile holds the metadata of one stored attachment
type InquiryFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Inquiry represents one inquiry form submission as persisted in the
// "inquiry" collection
type Inquiry struct {
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	ZipCity     string        `json:"zip_city"`
	ProjectType string        `json:"project_type"`
	Description string        `json:"description"`
	Files       []InquiryFile `json:"files"`
	Source      string        `json:"source"`
}
