package utils

import (
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.Register{
			Username: "alice",
			Email:    "  ALICE@EXAMPLE.COM  ",
		}

		SanitizeRegisterRequest(request)

		assert.Equal(t, "alice@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Username And Full Name Sanitization", func(t *testing.T) {
		request := &requests.Register{
			Username: "  alice  ",
			FullName: "  Alice Liddell ",
		}

		SanitizeRegisterRequest(request)

		assert.Equal(t, "alice", request.Username)
		assert.Equal(t, "Alice Liddell", request.FullName)
	})
}

func TestSanitizeBasicInfo(t *testing.T) {
	age := 30
	info := &models.BasicInfo{
		Name:     "  Zhang San ",
		Gender:   "   ",
		Age:      &age,
		Domicile: "\tBeijing\n",
	}

	SanitizeBasicInfo(info)

	assert.Equal(t, "Zhang San", info.Name)
	assert.Empty(t, info.Gender, "whitespace-only values should become empty")
	assert.Equal(t, "Beijing", info.Domicile)
	assert.Equal(t, 30, *info.Age)
}

func TestParseOrdinal(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		want    int
		wantErr bool
	}{
		{name: "valid", param: "3", want: 3},
		{name: "missing", param: "", wantErr: true},
		{name: "not a number", param: "q3", wantErr: true},
		{name: "zero", param: "0", wantErr: true},
		{name: "negative", param: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrdinal(tt.param)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectImageType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	contentType, err := DetectImageType(png)
	assert.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	_, err = DetectImageType([]byte("plain text, not an image"))
	assert.Error(t, err)

	_, err = DetectImageType(nil)
	assert.Error(t, err)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"失败", "failed"}, SplitCSV(" 失败, ,failed,"))
	assert.Nil(t, SplitCSV(""))
}
