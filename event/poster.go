package event

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
	"github.com/wailsapp/mimetype"
)

const posterMaxWidth = 600

// UploadPoster compresses the poster image, uploads it to S3 and stores
// the object key on the event.
func (s *EventSrvc) UploadPoster(ctx context.Context, eventID string, content []byte) (*Event, error) {
	if s.posterBucket == nil {
		errMsg := fmt.Errorf("poster bucket is not configured")
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	ev, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	compressed, mType, err := compressPoster(content, posterMaxWidth)
	if err != nil {
		return nil, newErrPosterInvalid().SetDebug(err)
	}

	key := fmt.Sprintf("posters/%s%s", eventID, extensionFor(mType))
	url, err := s.posterBucket.Upload(compressed, key, mType)
	if err != nil {
		errMsg := fmt.Errorf("failed to upload poster to S3: %w", err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}

	ev.PosterKey = key
	ev.PosterURL = url
	if err := s.repo.Save(ctx, ev); err != nil {
		errMsg := fmt.Errorf("error saving event %s: %w", eventID, err)
		return nil, newErrInternalSE().SetDebug(errMsg)
	}
	return ev, nil
}

// compressPoster resizes the image down to maxWidth and re-encodes it.
// Returns the compressed bytes and their media type.
func compressPoster(imgContent []byte, maxWidth uint) ([]byte, string, error) {
	mType := mimetype.Detect(imgContent)
	if mType == nil {
		return nil, "", fmt.Errorf("unknown image type")
	}

	var img image.Image
	var err error

	switch mType.String() {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(imgContent))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(imgContent))
	default:
		return nil, "", fmt.Errorf("unsupported image format: %s", mType.String())
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	if uint(img.Bounds().Dx()) > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	switch mType.String() {
	case "image/png":
		err = png.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), mType.String(), nil
}

func extensionFor(mType string) string {
	if mType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
