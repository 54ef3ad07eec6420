package server

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedUploadTypes = []string{"image/png", "image/jpeg", "image/gif"}

// PostMedia validates the upload locally before anything leaves the gateway:
// a rejected file never causes a network call.
func (a *AppHandler) PostMedia(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "Choose a file"})
		return
	}
	defer file.Close()
	if header.Size > a.maxUploadSize {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "File too large (max 2MB)"})
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !allowedType(contentType) {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": "Unsupported file type"})
		return
	}
	token, ok := a.currentToken(c)
	if !ok {
		c.IndentedJSON(http.StatusUnauthorized, gin.H{"message": "Login first"})
		return
	}

	var buffer bytes.Buffer
	if _, err := io.Copy(&buffer, file); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"message": "Failed to read file"})
		return
	}
	objectName := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(header.Filename))
	attachment, err := a.media.Upload(c.Request.Context(), token, c.PostForm("productId"), objectName, &buffer)
	if err != nil {
		surfaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": attachment})
}

func (a *AppHandler) GetMediaList(c *gin.Context) {
	attachments, err := a.media.ByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		surfaceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": attachments})
}

func allowedType(contentType string) bool {
	for _, allowed := range allowedUploadTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
