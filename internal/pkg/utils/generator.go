package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateFileName builds an object name like "avatars/<owner>-<unix>.png".
func GenerateFileName(prefix, owner, ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s/%s-%d%s", prefix, owner, time.Now().UnixNano(), strings.ToLower(ext))
}
