package utils

import (
	"encoding/base64"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > MaxFileSize {
		return BadRequestError("File size exceeds 5MB limit", nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return BadRequestError("Invalid file type. Allowed types: jpg, jpeg, png, gif, webp", nil)
	}

	return nil
}

// SaveUploadedFile saves a multipart upload to the uploads directory
// and returns its server-relative path
func SaveUploadedFile(file *multipart.FileHeader, uploadDir string) (string, error) {
	if err := ValidateImageFile(file); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	filename := uuid.New().String() + ext
	destination := filepath.Join(uploadDir, filename)

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", WrapError(err, "failed to create uploads directory")
	}

	src, err := file.Open()
	if err != nil {
		return "", WrapError(err, "failed to open uploaded file")
	}
	defer src.Close()

	dst, err := os.Create(destination)
	if err != nil {
		return "", WrapError(err, "failed to create destination file")
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		return "", WrapError(err, "failed to save file")
	}

	return "uploads/" + filename, nil
}

// SaveBase64Image decodes a base64 image payload (with or without a
// data URI prefix) and stores it like a multipart upload, returning
// the server-relative path
func SaveBase64Image(data, uploadDir string) (string, error) {
	ext := ".png"
	if strings.HasPrefix(data, "data:") {
		parts := strings.SplitN(data, ",", 2)
		if len(parts) != 2 {
			return "", BadRequestError("Malformed data URI", nil)
		}
		switch {
		case strings.Contains(parts[0], "image/jpeg"), strings.Contains(parts[0], "image/jpg"):
			ext = ".jpg"
		case strings.Contains(parts[0], "image/gif"):
			ext = ".gif"
		case strings.Contains(parts[0], "image/webp"):
			ext = ".webp"
		case strings.Contains(parts[0], "image/png"):
			ext = ".png"
		default:
			return "", BadRequestError("Invalid file type. Allowed types: jpg, jpeg, png, gif, webp", nil)
		}
		data = parts[1]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", BadRequestError("Invalid base64 image payload", err)
	}
	if len(decoded) > MaxFileSize {
		return "", BadRequestError("File size exceeds 5MB limit", nil)
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", WrapError(err, "failed to create uploads directory")
	}

	filename := uuid.New().String() + ext
	destination := filepath.Join(uploadDir, filename)
	if err := os.WriteFile(destination, decoded, 0644); err != nil {
		return "", WrapError(err, "failed to save file")
	}

	return "uploads/" + filename, nil
}

// DeleteFile deletes a file from the filesystem
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return WrapError(err, "failed to delete file")
	}
	return nil
}
