package handlers

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"healthbot/services/accesscontrol"
	"healthbot/services/factory"
	"healthbot/utils"
)

// Photos above this size are rejected before hitting the API.
const maxImageBytes = 10 << 20

type analyzeRequest struct {
	ImageBase64 string `json:"image_base64"`
}

// AnalyzeFoodHandler accepts a food photo (multipart "photo" field or JSON
// base64) and returns the recognized dish with its nutrition values.
func AnalyzeFoodHandler(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-User-ID header"})
		return
	}

	if !accesscontrol.CheckAllowAccessThenIncrement(userID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "daily request limit reached"})
		return
	}

	imageBytes, err := readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := uuid.New().String()
	utils.Infof("food analyze request %s: user=%s, image=%d bytes", requestID, userID, len(imageBytes))

	svc := factory.GetInstance().GetFoodRecognition()
	if svc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "food recognition not available"})
		return
	}

	analysis, err := svc.Analyze(c.Request.Context(), imageBytes)
	if err != nil {
		utils.Errorf("food analyze request %s failed: %v", requestID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "recognition failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID,
		"result":     analysis,
	})
}

func readImage(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("photo"); err == nil {
		if file.Size > maxImageBytes {
			return nil, errImageTooLarge
		}
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxImageBytes))
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageBase64 == "" {
		return nil, errNoImage
	}

	decoded, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, errBadBase64
	}
	if len(decoded) > maxImageBytes {
		return nil, errImageTooLarge
	}
	return decoded, nil
}
