package storagesvc

import (
	"context"
	"io"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"

	"github.com/daakhpc/StudentAdmissionSystem/core"
)

type ossService struct {
	bucket     *oss.Bucket
	endpoint   string
	bucketName string
	publicBase string
}

var _ FileStorage = (*ossService)(nil)

func NewOSSService() (FileStorage, error) {
	conf := core.Conf.Storage
	client, err := oss.New(conf.Endpoint, conf.AccessKey, conf.SecretKey)
	if err != nil {
		return nil, errors.Wrap(err, "creating OSS client")
	}
	bucket, err := client.Bucket(conf.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "getting OSS bucket")
	}
	return &ossService{
		bucket:     bucket,
		endpoint:   conf.Endpoint,
		bucketName: conf.Bucket,
		publicBase: conf.PublicBaseURL,
	}, nil
}

func (svc ossService) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := objectKey(filename)
	if err := svc.bucket.PutObject(key, content, oss.ContentType(contentType), oss.WithContext(ctx)); err != nil {
		return "", core.NewRemoteError("uploading "+filename, err)
	}
	return svc.publicURL(key), nil
}

func (svc ossService) publicURL(key string) string {
	if svc.publicBase != "" {
		return strings.TrimRight(svc.publicBase, "/") + "/" + key
	}
	end := strings.TrimPrefix(strings.TrimPrefix(svc.endpoint, "https://"), "http://")
	return "https://" + svc.bucketName + "." + end + "/" + key
}
