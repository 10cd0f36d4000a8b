package gdrive

import (
	"fmt"

	gerrors "github.com/Jumpaku/go-gdrive/errors"
)

// StreamMode selects the response header shape of Get.
type StreamMode string

const (
	// ModeInline lets the client render the file with its real content type.
	ModeInline StreamMode = "inline"
	// ModeDownload forces the client to save the file as an attachment.
	ModeDownload StreamMode = "download"
)

func (m StreamMode) Valid() bool {
	return m == ModeInline || m == ModeDownload
}

// ParseStreamMode parses "inline" or "download". The empty string selects ModeInline.
func ParseStreamMode(s string) (StreamMode, error) {
	if s == "" {
		return ModeInline, nil
	}
	m := StreamMode(s)
	if !m.Valid() {
		return "", gerrors.NewInvalidArgumentError(fmt.Sprintf("invalid streaming mode: %q", s))
	}
	return m, nil
}
