package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentor-link/api-go/config"
	"github.com/mentor-link/api-go/services"
	"github.com/mentor-link/api-go/utils"
)

const maxPictureSize = 5 << 20 // 5MB

type UploadController struct {
	R2Client *s3.Client
	R2Config *config.R2Config
	Profiles *services.ProfileService
}

func NewUploadController(profiles *services.ProfileService) *UploadController {
	r2Config := config.GetR2Config()

	// Create R2 client
	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		R2Client: r2Client,
		R2Config: r2Config,
		Profiles: profiles,
	}
}

// UploadProfilePicture stores the uploaded image in the media bucket
// and records its object key on the caller's profile.
func (uc *UploadController) UploadProfilePicture(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A picture file is required"})
		return
	}

	if fileHeader.Size > maxPictureSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !isValidPictureType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type for profile picture"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	key := uc.generatePictureKey(user.UserID, fileHeader.Filename)

	_, err = uc.R2Client.PutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload picture"})
		return
	}

	profile, err := uc.Profiles.SetProfilePicture(user.UserID, key)
	if err != nil {
		c.JSON(serviceErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"profile_picture_url": uc.Profiles.PictureURL(profile),
	})
}

func isValidPictureType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}

func (uc *UploadController) generatePictureKey(userID uint, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	timestamp := time.Now().Unix()
	id := uuid.New().String()
	return fmt.Sprintf("profile_pics/%d/%d_%s%s", userID, timestamp, id, ext)
}
