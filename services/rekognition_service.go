// services/rekognition_service.go
package services

import (
	"context"
	"encoding/base64"
	"strings"

	"fittrack/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type RekognitionService struct {
	client *rekognition.Client
}

func NewRekognitionService() *RekognitionService {
	return &RekognitionService{client: utils.RekClient()}
}

// RecognizeLabels runs label detection over a base64-encoded photo and
// returns the label names, highest confidence first.
func (r *RekognitionService) RecognizeLabels(base64Img string) ([]string, error) {
	if idx := strings.Index(base64Img, ","); idx != -1 {
		base64Img = base64Img[idx+1:]
	}
	imgBytes, err := base64.StdEncoding.DecodeString(base64Img)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: imgBytes},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, aws.ToString(l.Name))
	}
	return labels, nil
}
