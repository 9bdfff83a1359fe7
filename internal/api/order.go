package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"

	"blueace_booking_client/platform/apperr"
)

// CreateOrder submits a booking as one multipart POST. Fields are written in
// the order given; voice is optional and attached as a single named file part.
// A business rejection (success=false) is returned inside OrderResult, not as
// an error, so the caller can surface the server message verbatim.
func (c *Client) CreateOrder(ctx context.Context, fields []FormField, voice *VoiceAttachment) (OrderResult, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, field := range fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return OrderResult{}, apperr.Wrap(apperr.KindInternal, fmt.Sprintf("write field %s", field.Name), err)
		}
	}

	if voice != nil {
		if err := addVoicePart(writer, voice); err != nil {
			return OrderResult{}, err
		}
	}

	if err := writer.Close(); err != nil {
		return OrderResult{}, apperr.Wrap(apperr.KindInternal, "close multipart writer", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/make-order-app", body)
	if err != nil {
		return OrderResult{}, apperr.Wrap(apperr.KindInternal, "create request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var envelope Envelope
	if err := c.do(req, &envelope); err != nil {
		return OrderResult{}, err
	}

	return OrderResult{
		Success: envelope.Success,
		Message: envelope.Message,
		Data:    envelope.Data,
	}, nil
}

// addVoicePart streams the recorded clip from disk into the multipart body.
func addVoicePart(w *multipart.Writer, voice *VoiceAttachment) error {
	content, err := os.ReadFile(localPath(voice.FileURI))
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "read voice note", err)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="voiceNote"; filename="%s"`, voice.Filename))
	h.Set("Content-Type", voice.MIMEType)

	part, err := w.CreatePart(h)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "create voice part", err)
	}
	if _, err := part.Write(content); err != nil {
		return apperr.Wrap(apperr.KindInternal, "write voice part", err)
	}

	return nil
}

// localPath strips the file:// scheme so the URI can be opened from disk.
func localPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
