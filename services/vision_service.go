package services

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
)

// VisionService wraps the Cloud Vision label detector used by the
// scan-food endpoint.
type VisionService struct {
	client *vision.ImageAnnotatorClient
}

func NewVisionService(ctx context.Context) (*VisionService, error) {
	client, err := vision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing vision client: %w", err)
	}
	return &VisionService{client: client}, nil
}

// DetectLabels returns the label descriptions for the image bytes.
func (v *VisionService) DetectLabels(ctx context.Context, content []byte) ([]string, error) {
	img := &visionpb.Image{Content: content}
	annotations, err := v.client.DetectLabels(ctx, img, nil, 10)
	if err != nil {
		return nil, fmt.Errorf("detecting labels: %w", err)
	}

	labels := make([]string, 0, len(annotations))
	for _, a := range annotations {
		labels = append(labels, a.Description)
	}
	return labels, nil
}

func (v *VisionService) Close() error {
	return v.client.Close()
}
