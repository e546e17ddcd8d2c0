package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"msgboard/internal/domain/dto"
	"msgboard/internal/domain/model"
	"msgboard/internal/presentation"
)

func multipartRequest(t *testing.T, fields map[string]string, image []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if image != nil {
		part, err := w.CreateFormFile(presentation.ImageField, "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/messages", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestHandleSubmit(t *testing.T) {
	t.Parallel()

	image := []byte{0xff, 0xd8, 0xff}

	tests := []struct {
		name           string
		request        func(t *testing.T) *http.Request
		expected       dto.Submission
		result         *dto.MessageDescriptor
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "multipart with image",
			request: func(t *testing.T) *http.Request {
				t.Helper()

				return multipartRequest(t, map[string]string{
					"name": "lincoln", "email": "foo@bar.com", "url": "comum.org", "avatar": "",
					"latitude": "1.5", "longitude": "2.5", "message": "hello #debian",
				}, image)
			},
			expected: dto.Submission{
				Name: "lincoln", Email: "foo@bar.com", URL: "comum.org",
				Latitude: "1.5", Longitude: "2.5", Message: "hello #debian", Image: image,
			},
			result:         &dto.MessageDescriptor{ID: "abc", HasImage: true},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"abc"`,
		},
		{
			name: "urlencoded without image",
			request: func(t *testing.T) *http.Request {
				t.Helper()

				form := url.Values{"name": {"lincoln"}, "message": {"just some words"}}
				req := httptest.NewRequest(http.MethodPost, "/messages", strings.NewReader(form.Encode()))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

				return req
			},
			expected:       dto.Submission{Name: "lincoln", Message: "just some words"},
			result:         &dto.MessageDescriptor{ID: "def"},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"has_image":false`,
		},
		{
			name: "validation failure",
			request: func(t *testing.T) *http.Request {
				t.Helper()

				return multipartRequest(t, map[string]string{"message": "short"}, nil)
			},
			expected:       dto.Submission{Message: "short"},
			err:            &model.ValidationError{Fields: []string{"sender_name", "content"}, Reason: "required"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"required","fields":["sender_name","content"]}`,
		},
		{
			name: "not an image",
			request: func(t *testing.T) *http.Request {
				t.Helper()

				return multipartRequest(t, map[string]string{"name": "x"}, []byte("text"))
			},
			expected:       dto.Submission{Name: "x", Image: []byte("text")},
			err:            fmt.Errorf("%w: detected text/plain", model.ErrNotAnImage),
			expectedStatus: http.StatusUnsupportedMediaType,
		},
		{
			name: "storage failure",
			request: func(t *testing.T) *http.Request {
				t.Helper()

				return multipartRequest(t, map[string]string{"name": "x"}, nil)
			},
			expected:       dto.Submission{Name: "x"},
			err:            errors.New("mongo down"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			submitter := &mockSubmitter{}
			submitter.On("Submit", mock.Anything, tt.expected).Return(tt.result, tt.err)

			e := echo.New()
			e.POST("/messages", NewSubmitHandler(submitter).HandleSubmit)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, tt.request(t))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), rec.Header().Get(presentation.ReasonTag))
			}

			submitter.AssertExpectations(t)
		})
	}
}

func TestHandleSubmitResponseIsTransportForm(t *testing.T) {
	t.Parallel()

	submitter := &mockSubmitter{}
	submitter.On("Submit", mock.Anything, mock.Anything).Return(&dto.MessageDescriptor{
		ID:        "65f1c0ffee0000000000beef",
		Tags:      []string{"debian"},
		ImageURL:  "http://board.example/nfimage/65f1c0ffee0000000000beef/800x600",
		ThumbURL:  "http://board.example/image/65f1c0ffee0000000000beef/80x60",
		Thumb2URL: "http://board.example/image/65f1c0ffee0000000000beef/120x90",
		HasImage:  true,
	}, nil)

	e := echo.New()
	e.POST("/messages", NewSubmitHandler(submitter).HandleSubmit)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartRequest(t, map[string]string{"name": "lincoln"}, nil))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "http://board.example/image/65f1c0ffee0000000000beef/80x60", body["thumb_url"])
	assert.Equal(t, true, body["has_image"])
	assert.NotContains(t, body, "sender_email")
}
