package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps the multipart body of an upload request.
const maxUploadBytes = 20 << 20

// processUploadReq reads the multipart "file" field.
func (h *handler) processUploadReq(c *gin.Context) (uploadReq, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return uploadReq{}, errFileTooLarge
		}
		return uploadReq{}, errFileRequired
	}

	f, err := fh.Open()
	if err != nil {
		return uploadReq{}, err
	}

	return uploadReq{
		SessionID: c.Param("id"),
		FileName:  fh.Filename,
		Size:      fh.Size,
		file:      f,
	}, nil
}

// processAddNoteReq binds the note body. Binding failures carry the same
// message as a domain validation failure.
func (h *handler) processAddNoteReq(c *gin.Context) (addNoteReq, error) {
	var req addNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errNoteFields
	}
	req.SessionID = c.Param("id")
	return req, nil
}

func (h *handler) processSendChatReq(c *gin.Context) (sendChatReq, error) {
	var req sendChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errEmptyMessage
	}
	req.SessionID = c.Param("id")
	return req, nil
}
