package minio

import (
	"context"
	"net/url"
	"strings"

	"github.com/DRSN-tech/luxe-couture-api/internal/cfg"
	"github.com/DRSN-tech/luxe-couture-api/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo выдаёт подписанные ссылки на изображения товаров, лежащие в MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// ResolveImage возвращает ссылку на объект, действующую cfg.PresignTTL.
// Абсолютные http(s)-ссылки возвращаются без изменений.
func (i *ImageRepo) ResolveImage(ctx context.Context, ref string) (string, error) {
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return ref, nil
	}

	key := objectKey(ref, i.cfg.BucketName)
	if key == "" {
		return "", e.Wrap(whereami.WhereAmI(), e.ErrInvalidRecord)
	}

	u, err := i.mc.PresignedGetObject(ctx, i.cfg.BucketName, key, i.cfg.PresignTTL, url.Values{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), nil
}

// objectKey убирает ведущий слэш и префикс бакета, если ссылка записана как "bucket/key".
func objectKey(ref, bucket string) string {
	key := strings.TrimLeft(strings.TrimSpace(ref), "/")
	if bucket != "" {
		key = strings.TrimPrefix(key, bucket+"/")
	}

	return key
}
