package assessments

import (
	"io"
	"mime"
	"mime/multipart"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(value int) *int {
	return &value
}

func TestSubmissionBuilder_BuildRequiresScale(t *testing.T) {
	builder := NewSubmissionBuilder()

	tests := map[string]*models.AssessmentDraft{
		"nil draft":        nil,
		"empty draft":      models.NewAssessmentDraft(),
		"blank scale type": {ScaleType: "   ", Answers: map[int]string{1: "a"}},
	}
	for name, draft := range tests {
		t.Run(name, func(t *testing.T) {
			payload, err := builder.Build(draft)

			assert.Nil(t, payload)
			assert.True(t, exceptions.IsKind(err, exceptions.KindIncompleteDraft))
		})
	}
}

func TestSubmissionBuilder_BuildFieldOrder(t *testing.T) {
	draft := models.NewAssessmentDraft()
	draft.BasicInfo = models.BasicInfo{
		Domicile:       "Shanghai",
		Name:           "Li Si",
		Age:            intPtr(34),
		CriminalRecord: intPtr(0),
		Occupation:     "",
		Gender:         "  ",
	}
	draft.ScaleType = "PHQ9"
	draft.SetAnswer(10, "c")
	draft.SetAnswer(2, "b")
	draft.SetAnswer(1, "a")
	draft.SetAnswer(3, "")

	payload, err := NewSubmissionBuilder().Build(draft)

	require.NoError(t, err)
	assert.Equal(t, []models.FormField{
		{Name: "name", Value: "Li Si"},
		{Name: "age", Value: "34"},
		{Name: "criminal_record", Value: "0"},
		{Name: "domicile", Value: "Shanghai"},
		{Name: "scale_type", Value: "PHQ9"},
		{Name: "q1", Value: "a"},
		{Name: "q2", Value: "b"},
		{Name: "q10", Value: "c"},
	}, payload.Fields)
	assert.Nil(t, payload.Attachment)
}

func TestSubmissionBuilder_BuildCopiesAttachment(t *testing.T) {
	draft := models.NewAssessmentDraft()
	draft.ScaleType = "SCL90"
	draft.SetAttachment(&models.Attachment{FileName: "scan.png", ContentType: "image/png", Data: []byte{1, 2, 3}})

	payload, err := NewSubmissionBuilder().Build(draft)
	require.NoError(t, err)
	require.NotNil(t, payload.Attachment)

	draft.Attachment.Data[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, payload.Attachment.Data, "payload must not alias the draft")
}

func TestSubmissionBuilder_Encode(t *testing.T) {
	builder := NewSubmissionBuilder()
	payload := &models.SubmissionPayload{
		Fields: []models.FormField{
			{Name: "name", Value: "王五"},
			{Name: "scale_type", Value: "PHQ9"},
			{Name: "q1", Value: "2"},
		},
		Attachment: &models.Attachment{FileName: `a"b.jpg`, ContentType: "image/jpeg", Data: []byte("jpegdata")},
	}

	body, contentType, err := builder.Encode(payload)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(body, params["boundary"])
	var names []string
	values := map[string]string{}
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		names = append(names, part.FormName())
		values[part.FormName()] = string(data)
		if part.FormName() == "image" {
			assert.Equal(t, `a"b.jpg`, part.FileName())
			assert.Equal(t, "image/jpeg", part.Header.Get("Content-Type"))
		}
	}

	assert.Equal(t, []string{"name", "scale_type", "q1", "image"}, names)
	assert.Equal(t, "王五", values["name"])
	assert.Equal(t, "jpegdata", values["image"])
}

func TestSubmissionBuilder_EncodeDefaultsAttachmentMetadata(t *testing.T) {
	payload := &models.SubmissionPayload{
		Fields:     []models.FormField{{Name: "scale_type", Value: "PHQ9"}},
		Attachment: &models.Attachment{Data: []byte{0xff}},
	}

	body, contentType, err := NewSubmissionBuilder().Encode(payload)
	require.NoError(t, err)

	_, params, _ := mime.ParseMediaType(contentType)
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	files := form.File["image"]
	require.Len(t, files, 1)
	assert.Equal(t, "attachment", files[0].Filename)
	assert.Equal(t, "application/octet-stream", files[0].Header.Get("Content-Type"))
}
