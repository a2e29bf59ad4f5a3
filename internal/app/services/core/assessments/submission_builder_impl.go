package assessments

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"sort"
	"strconv"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type submissionBuilder struct{}

func NewSubmissionBuilder() contracts.SubmissionBuilder {
	return &submissionBuilder{}
}

// Build serializes draft as basic info fields in their fixed order, then
// scale_type, then answers by ascending ordinal as q<N>. Empty values are
// left out so the backend can tell "not provided" from "provided empty".
func (b *submissionBuilder) Build(draft *models.AssessmentDraft) (*models.SubmissionPayload, error) {
	if draft == nil || strings.TrimSpace(draft.ScaleType) == "" {
		return nil, exceptions.ErrIncompleteDraft(errors.New("scale_type is not set"))
	}

	payload := &models.SubmissionPayload{}

	values := draft.BasicInfo.Values()
	for _, name := range constvars.BasicInfoFieldOrder {
		if value := strings.TrimSpace(values[name]); value != "" {
			payload.Fields = append(payload.Fields, models.FormField{Name: name, Value: value})
		}
	}

	payload.Fields = append(payload.Fields, models.FormField{
		Name:  constvars.FormFieldScaleType,
		Value: strings.TrimSpace(draft.ScaleType),
	})

	ordinals := make([]int, 0, len(draft.Answers))
	for ordinal := range draft.Answers {
		ordinals = append(ordinals, ordinal)
	}
	sort.Ints(ordinals)
	for _, ordinal := range ordinals {
		answer := strings.TrimSpace(draft.Answers[ordinal])
		if answer == "" {
			continue
		}
		payload.Fields = append(payload.Fields, models.FormField{
			Name:  AnswerFieldName(ordinal),
			Value: answer,
		})
	}

	if draft.Attachment.Size() > 0 {
		data := make([]byte, len(draft.Attachment.Data))
		copy(data, draft.Attachment.Data)
		payload.Attachment = &models.Attachment{
			FileName:    draft.Attachment.FileName,
			ContentType: draft.Attachment.ContentType,
			Data:        data,
		}
	}

	return payload, nil
}

// Encode writes payload as multipart/form-data in field order, with the
// attachment as the last part.
func (b *submissionBuilder) Encode(payload *models.SubmissionPayload) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, field := range payload.Fields {
		err := writer.WriteField(field.Name, field.Value)
		if err != nil {
			return nil, "", exceptions.ErrEncodeMultipart(err)
		}
	}

	if attachment := payload.Attachment; attachment.Size() > 0 {
		fileName := attachment.FileName
		if fileName == "" {
			fileName = constvars.DefaultAttachmentFileName
		}
		contentType := attachment.ContentType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(constvars.FormFieldImage), quoteEscaper.Replace(fileName)))
		header.Set(constvars.HeaderContentType, contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", exceptions.ErrEncodeMultipart(err)
		}
		_, err = part.Write(attachment.Data)
		if err != nil {
			return nil, "", exceptions.ErrEncodeMultipart(err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, "", exceptions.ErrEncodeMultipart(err)
	}
	return body, writer.FormDataContentType(), nil
}

func AnswerFieldName(ordinal int) string {
	return constvars.FormFieldAnswerPrefix + strconv.Itoa(ordinal)
}
