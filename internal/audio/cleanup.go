package audio

import (
	"context"
	"os"
)

// cleanupSource removes the converted copy of a source, logs warning if fails
func (c *implConverter) cleanupSource(ctx context.Context, src *source) {
	if src.tempDir == "" {
		return
	}
	if err := os.RemoveAll(src.tempDir); err != nil {
		c.logger.Warn(ctx, "Failed to cleanup converted audio %s: %v", src.tempDir, err)
	} else {
		c.logger.Debug(ctx, "Cleaned up converted audio: %s", src.path)
	}
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (c *implConverter) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		c.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	}
}
