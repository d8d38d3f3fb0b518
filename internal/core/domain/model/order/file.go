package order

import (
	"fmt"
	"time"

	"sitebuilder/internal/pkg/errs"
)

// FileType classifies a delivered build artifact.
type FileType int

const (
	// FileTypeUnknown represents an invalid or undefined file type.
	FileTypeUnknown FileType = iota

	// FileTypeDesign is a design artifact (mockups, style guides).
	FileTypeDesign

	// FileTypeCode is a code bundle.
	FileTypeCode

	// FileTypeImage is an image asset.
	FileTypeImage

	// FileTypeDocument is a document (briefs, manuals).
	FileTypeDocument

	// FileTypeOther covers everything else. This is the default.
	FileTypeOther
)

func getFileTypeStrings() map[FileType]string {
	return map[FileType]string{
		FileTypeDesign:   "design",
		FileTypeCode:     "code",
		FileTypeImage:    "image",
		FileTypeDocument: "document",
		FileTypeOther:    "other",
	}
}

// FileTypeFromString parses a file type name. Empty input defaults to other.
func FileTypeFromString(s string) (FileType, error) {
	if s == "" {
		return FileTypeOther, nil
	}
	for ft, name := range getFileTypeStrings() {
		if name == s {
			return ft, nil
		}
	}
	return FileTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"fileType",
		fmt.Errorf("%q is not a valid file type", s),
	)
}

// String returns the lowercase name of the file type.
func (t FileType) String() string {
	if str, ok := getFileTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the file type is one of the fixed enum values.
func (t FileType) Validate() error {
	if _, ok := getFileTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fileType", fmt.Errorf("%d is not a valid file type", t))
	}
	return nil
}

// DeliveredFile is the metadata of a build artifact handed to the customer.
// The bytes themselves live in the blob store; the order keeps only the name,
// URL, type, description, and upload time. Entries are immutable once appended.
type DeliveredFile struct {
	name        string
	url         string
	fileType    FileType
	description string
	uploadedAt  time.Time
}

// NewDeliveredFile creates validated delivered-file metadata.
func NewDeliveredFile(name, url string, fileType FileType, description string, uploadedAt time.Time) (DeliveredFile, error) {
	if name == "" {
		return DeliveredFile{}, errs.NewValueIsRequiredError("file name")
	}
	if url == "" {
		return DeliveredFile{}, errs.NewValueIsRequiredError("file url")
	}
	if err := fileType.Validate(); err != nil {
		return DeliveredFile{}, err
	}
	if uploadedAt.IsZero() {
		return DeliveredFile{}, errs.NewValueIsRequiredError("file uploadedAt")
	}

	return DeliveredFile{
		name:        name,
		url:         url,
		fileType:    fileType,
		description: description,
		uploadedAt:  uploadedAt,
	}, nil
}

// Name returns the original file name.
func (f DeliveredFile) Name() string {
	return f.name
}

// URL returns the stable URL issued by the blob store.
func (f DeliveredFile) URL() string {
	return f.url
}

// FileType returns the artifact classification.
func (f DeliveredFile) FileType() FileType {
	return f.fileType
}

// Description returns the optional description supplied at upload.
func (f DeliveredFile) Description() string {
	return f.description
}

// UploadedAt returns when the file was delivered.
func (f DeliveredFile) UploadedAt() time.Time {
	return f.uploadedAt
}
