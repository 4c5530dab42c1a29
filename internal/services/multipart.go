package services

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"

	"inquiryapi/gen/inquiry"
)

// InquirySubmitDecoder reads a multipart inquiry submission into the payload.
// Every part is read fully into memory. Text fields are kept as sent, a field
// that never appears stays nil. Attachments keep the filename exactly as the
// client sent it; sanitizing happens when the file is stored. File parts with
// an empty filename (an empty file input) are skipped.
func InquirySubmitDecoder(mr *multipart.Reader, p **inquiry.InquirySubmitPayload) error {
	payload := &inquiry.InquirySubmitPayload{}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read multipart body: %w", err)
		}

		if err := decodePart(part, payload); err != nil {
			part.Close()
			return err
		}
		part.Close()
	}

	*p = payload
	return nil
}

func decodePart(part *multipart.Part, payload *inquiry.InquirySubmitPayload) error {
	_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
	if err != nil {
		return fmt.Errorf("invalid Content-Disposition header: %w", err)
	}
	name := params["name"]

	if filename, isFile := params["filename"]; isFile {
		if name != "files" {
			return nil
		}
		content, err := io.ReadAll(part)
		if err != nil {
			return fmt.Errorf("failed to read file %q: %w", filename, err)
		}
		if filename == "" {
			return nil
		}
		f := &inquiry.UploadedFile{
			Filename: filename,
			Content:  content,
		}
		if ct := part.Header.Get("Content-Type"); ct != "" {
			f.ContentType = &ct
		}
		payload.Files = append(payload.Files, f)
		return nil
	}

	var target **string
	switch name {
	case "name":
		target = &payload.Name
	case "email":
		target = &payload.Email
	case "phone":
		target = &payload.Phone
	case "zip_city":
		target = &payload.ZipCity
	case "project_type":
		target = &payload.ProjectType
	case "description":
		target = &payload.Description
	case "source":
		target = &payload.Source
	case "files":
		return inquiry.MakeBadRequest(errors.New(invalidInputPrefix + "files must be sent as file parts"))
	default:
		return nil
	}
	if *target != nil {
		return nil
	}

	value, err := io.ReadAll(part)
	if err != nil {
		return fmt.Errorf("failed to read field %q: %w", name, err)
	}
	s := string(value)
	*target = &s
	return nil
}
