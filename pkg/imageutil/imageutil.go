package imageutil

import (
	"encoding/base64"
	"fmt"
	"io"
)

// MaxAttachmentBytes caps the image payload we are willing to inline into a
// product mutation. The remote platform rejects oversized attachments anyway;
// failing early keeps the orchestrator from burning a create call on a
// payload that can never succeed.
const MaxAttachmentBytes = 8 << 20

// Encode converts raw image bytes into the transport-safe base64 payload the
// remote platform expects in an image "attachment" field.
func Encode(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// Decode is the exact inverse of Encode.
func Decode(payload string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(payload)
}

// EncodeReader drains a single uploaded file and returns its base64 payload.
// The read runs to completion before returning; a submission can never carry
// a partially-read attachment.
func EncodeReader(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxAttachmentBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("image file is empty")
	}
	if len(raw) > MaxAttachmentBytes {
		return "", fmt.Errorf("image exceeds %d bytes", MaxAttachmentBytes)
	}
	return Encode(raw), nil
}
