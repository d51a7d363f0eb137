// Package objectstore lista e baixa as planilhas de vendas do bucket
package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

//go:generate mockgen -source=s3.go -destination=mocks/objectstore.go -package=mocks

type ObjectStore interface {
	List(ctx context.Context, bucket, prefix string) ([]string, error)
	Get(ctx context.Context, bucket, key string) ([]byte, error)
}

// S3API é o subconjunto do cliente S3 usado pela store
type S3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Store struct {
	client S3API
}

func NewS3Store(ctx context.Context, cfg config.ObjectStorage) (*S3Store, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração AWS: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logrus.WithFields(logrus.Fields{
		"region":   cfg.Region,
		"endpoint": cfg.Endpoint,
		"bucket":   cfg.Bucket,
	}).Info("Cliente S3 configurado")

	return NewS3StoreWithClient(client), nil
}

func NewS3StoreWithClient(client S3API) *S3Store {
	return &S3Store{client: client}
}

// List retorna as chaves de todos os objetos sob o prefixo, percorrendo todas as páginas
func (s *S3Store) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	keys := make([]string, 0)
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar objetos do bucket %s: %w", bucket, err)
		}

		for _, object := range page.Contents {
			key := aws.ToString(object.Key)
			if key == "" || strings.HasSuffix(key, "/") {
				continue
			}
			keys = append(keys, key)
		}
	}

	return keys, nil
}

func (s *S3Store) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao baixar objeto %s: %w", key, err)
	}
	defer output.Body.Close()

	body, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler objeto %s: %w", key, err)
	}

	return body, nil
}
