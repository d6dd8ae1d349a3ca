package usecase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"folio/internal/domain/apperr"
	"folio/internal/domain/model"
	"folio/pkg/utils"
)

// ValidatorConfig is policy, not hard-coded numbers: extension sets, the
// per-type size limits, and the allowed sections all come from the config
// file. Zero values fall back to the historical defaults.
type ValidatorConfig struct {
	ImageMaxBytes int64    `yaml:"image_max_bytes"`
	VideoMaxBytes int64    `yaml:"video_max_bytes"`
	ImageTypes    []string `yaml:"image_types"`
	VideoTypes    []string `yaml:"video_types"`
	Sections      []string `yaml:"sections"`
}

func (c *ValidatorConfig) Normalize() {
	if c.ImageMaxBytes == 0 {
		c.ImageMaxBytes = 3 * 1024 * 1024
	}
	if c.VideoMaxBytes == 0 {
		c.VideoMaxBytes = 50 * 1024 * 1024
	}
	if len(c.ImageTypes) == 0 {
		c.ImageTypes = []string{"jpg", "jpeg", "png", "webp"}
	}
	if len(c.VideoTypes) == 0 {
		c.VideoTypes = []string{"mp4", "webm", "mov"}
	}
	if len(c.Sections) == 0 {
		c.Sections = []string{
			"leadership", "global-ensemble", "refugee", "gem", "fos", "rcy",
			"jeju-galot", "hyanggyo", "sports", "sign-language", "awards", "news",
		}
	}
}

// Validator rejects unacceptable uploads before any storage write.
// It is a pure check and never touches storage.
type Validator struct {
	cfg *ValidatorConfig
}

func NewValidator(cfg *ValidatorConfig) *Validator {
	cfg.Normalize()

	return &Validator{cfg: cfg}
}

// ValidateCount enforces the one-file-per-request rule.
func (v *Validator) ValidateCount(files int) error {
	if files == 0 {
		return apperr.New(apperr.Validation, "No file uploaded")
	}
	if files > 1 {
		return apperr.New(apperr.Validation, "Too many files or invalid field name.")
	}

	return nil
}

// ValidateFile classifies the upload as image or video from its extension
// and enforces the matching size limit. The reported limit is always the
// one that was violated.
func (v *Validator) ValidateFile(originalName string, size int64) (string, error) {
	ext := utils.ExtensionFromName(originalName)

	var mediaType string
	var limit int64

	switch {
	case slices.Contains(v.cfg.ImageTypes, ext):
		mediaType = model.MediaTypeImage
		limit = v.cfg.ImageMaxBytes
	case slices.Contains(v.cfg.VideoTypes, ext):
		mediaType = model.MediaTypeVideo
		limit = v.cfg.VideoMaxBytes
	default:
		allowed := append(append([]string{}, v.cfg.ImageTypes...), v.cfg.VideoTypes...)

		return "", apperr.New(apperr.Validation,
			fmt.Sprintf("File type .%s is not allowed. Allowed types: %s", ext, strings.Join(allowed, ", ")))
	}

	if size > limit {
		label := "Image"
		if mediaType == model.MediaTypeVideo {
			label = "Video"
		}

		return "", apperr.New(apperr.Validation,
			fmt.Sprintf("%s file too large. Maximum size is %s.", label, utils.FormatMB(limit)))
	}

	return mediaType, nil
}

// ValidateFields checks the required metadata fields and the section and
// mediaType enumerations.
func (v *Validator) ValidateFields(section, mediaType, title, description string) error {
	if section == "" || mediaType == "" || title == "" || description == "" {
		return apperr.New(apperr.Validation,
			"Missing required fields: section, mediaType, title, description")
	}

	if !slices.Contains(v.cfg.Sections, section) {
		return apperr.New(apperr.Validation,
			fmt.Sprintf("Invalid section. Must be one of: %s", strings.Join(v.cfg.Sections, ", ")))
	}

	if mediaType != model.MediaTypeImage && mediaType != model.MediaTypeVideo {
		return apperr.New(apperr.Validation, `Invalid mediaType. Must be "image" or "video"`)
	}

	return nil
}

// ValidateContent checks that the detected MIME class of the raw bytes
// agrees with the declared media type.
func (v *Validator) ValidateContent(data []byte, mediaType string) (string, error) {
	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), mediaType+"/") {
		return "", apperr.New(apperr.Validation,
			fmt.Sprintf("invalid file type: detected %s, expected %s", detected.String(), mediaType))
	}

	return detected.String(), nil
}
